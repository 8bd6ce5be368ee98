package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"focusflow/internal/storage"
)

// DateLayout is the calendar-date format used throughout the state
// (due dates, completion dates, last active date).
const DateLayout = "2006-01-02"

// Engine is the progress engine: the single owner of tasks, rewards and the
// user progress aggregate. All mutation goes through its named operations;
// reads go through snapshot accessors. The full state is persisted after
// every mutating operation.
//
// Operations are serialized by an internal mutex. The CLI itself is
// sequential, but the TUI runs engine calls from bubbletea command
// goroutines, so the engine is its own single-writer boundary.
type Engine struct {
	mu    sync.Mutex
	store *storage.StateStore
	log   *zap.Logger
	state *storage.State

	now func() time.Time

	lastSaveErr error
}

// New constructs the engine and loads persisted state. A missing or
// unreadable blob falls back to the empty-state defaults; only a real
// storage error fails construction.
func New(ctx context.Context, store *storage.StateStore, log *zap.Logger) (*Engine, error) {
	e := &Engine{
		store: store,
		log:   log,
		now:   time.Now,
	}

	st, err := store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrCorruptState):
		log.Warn("persisted state unreadable, starting fresh", zap.Error(err))
		st = nil
	case err != nil:
		return nil, err
	}
	if st == nil {
		st = storage.DefaultState(e.today())
	}
	e.state = st
	return e, nil
}

// LastSaveErr reports the outcome of the most recent persistence attempt.
// In-memory state commits regardless of persistence failures; callers that
// care surface this to the user.
func (e *Engine) LastSaveErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSaveErr
}

// save persists the full state. Best effort: the in-memory mutation has
// already committed, so a failed write is logged and recorded, not rolled
// back. Callers must hold e.mu.
func (e *Engine) save(ctx context.Context) {
	if err := e.store.Save(ctx, e.state); err != nil {
		e.lastSaveErr = err
		e.log.Error("persist state", zap.Error(err))
		return
	}
	e.lastSaveErr = nil
}

func (e *Engine) today() string {
	return e.now().Format(DateLayout)
}

// Tasks returns a snapshot copy of the task collection, newest first.
func (e *Engine) Tasks() []storage.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]storage.Task, len(e.state.Tasks))
	copy(out, e.state.Tasks)
	return out
}

// Task returns a snapshot copy of a single task by ID.
func (e *Engine) Task(id string) (storage.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.findTask(id)
	if t == nil {
		return storage.Task{}, false
	}
	return *t, true
}

// Rewards returns a snapshot copy of the reward collection, newest first.
func (e *Engine) Rewards() []storage.Reward {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]storage.Reward, len(e.state.Rewards))
	copy(out, e.state.Rewards)
	return out
}

// Progress returns a snapshot copy of the user progress aggregate.
func (e *Engine) Progress() storage.UserProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyProgress(e.state.UserProgress)
}

func copyProgress(p storage.UserProgress) storage.UserProgress {
	badges := make([]string, len(p.EarnedBadges))
	copy(badges, p.EarnedBadges)
	p.EarnedBadges = badges
	return p
}

func (e *Engine) findTask(id string) *storage.Task {
	for i := range e.state.Tasks {
		if e.state.Tasks[i].ID == id {
			return &e.state.Tasks[i]
		}
	}
	return nil
}

func (e *Engine) findReward(id string) *storage.Reward {
	for i := range e.state.Rewards {
		if e.state.Rewards[i].ID == id {
			return &e.state.Rewards[i]
		}
	}
	return nil
}
