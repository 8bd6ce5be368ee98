package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focusflow/internal/storage"
)

// TaskInput carries the caller-supplied fields for a new task. Inputs are
// trusted as pre-validated; the engine does not enforce a non-empty title
// or a positive duration.
type TaskInput struct {
	Title      string
	Duration   int
	Difficulty Difficulty
	Category   Category
	DueDate    string
}

// AddTask creates a task with a fresh ID and cached XP and prepends it to
// the collection (newest first).
func (e *Engine) AddTask(ctx context.Context, in TaskInput) storage.Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := storage.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Duration:    in.Duration,
		Difficulty:  string(in.Difficulty),
		Category:    string(in.Category),
		XP:          CalculateXP(in.Duration, in.Difficulty),
		DueDate:     in.DueDate,
		CreatedDate: e.now().UTC().Format(time.RFC3339),
	}
	e.state.Tasks = append([]storage.Task{t}, e.state.Tasks...)

	e.log.Info("task added",
		zap.String("id", t.ID),
		zap.String("difficulty", t.Difficulty),
		zap.Int("xp", t.XP))
	e.save(ctx)
	return t
}

// TaskUpdate is a partial update. Nil fields are left untouched. Completion
// state has no fields here on purpose: only CompleteTask transitions it.
type TaskUpdate struct {
	Title      *string
	Duration   *int
	Difficulty *Difficulty
	Category   *Category
	DueDate    *string
}

// UpdateTask applies a partial update to the task with the given ID. When
// duration or difficulty changes, XP is recomputed from the merged values.
// Unknown IDs are a silent no-op.
func (e *Engine) UpdateTask(ctx context.Context, id string, upd TaskUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.findTask(id)
	if t == nil {
		e.log.Debug("update for unknown task", zap.String("id", id))
		return
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.Category != nil {
		t.Category = string(*upd.Category)
	}
	if upd.Duration != nil {
		t.Duration = *upd.Duration
	}
	if upd.Difficulty != nil {
		t.Difficulty = string(*upd.Difficulty)
	}
	if upd.Duration != nil || upd.Difficulty != nil {
		t.XP = CalculateXP(t.Duration, Difficulty(t.Difficulty))
	}

	e.save(ctx)
}

// DeleteTask removes the task with the given ID. Unknown IDs are a no-op.
func (e *Engine) DeleteTask(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Tasks {
		if e.state.Tasks[i].ID == id {
			e.state.Tasks = append(e.state.Tasks[:i], e.state.Tasks[i+1:]...)
			e.save(ctx)
			return
		}
	}
}
