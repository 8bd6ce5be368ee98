package engine

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"focusflow/internal/storage"
)

func newTestStore(t *testing.T) *storage.StateStore {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewStateStore(db)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(context.Background(), newTestStore(t), zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

// fixClock pins the engine clock to a known instant.
func fixClock(e *Engine, at time.Time) {
	e.now = func() time.Time { return at }
}

func TestAddTaskDerivesXP(t *testing.T) {
	cases := []struct {
		duration   int
		difficulty Difficulty
		wantXP     int
	}{
		{45, DifficultyEasy, 45},
		{45, DifficultyMedium, 90},
		{45, DifficultyHard, 180},
		{45, DifficultyElite, 360},
		{30, DifficultyMedium, 60},
	}

	ctx := context.Background()
	e := newTestEngine(t)
	for _, c := range cases {
		got := e.AddTask(ctx, TaskInput{Title: "t", Duration: c.duration, Difficulty: c.difficulty, Category: CategoryWork})
		if got.XP != c.wantXP {
			t.Fatalf("AddTask(%d, %s) xp=%d, want %d", c.duration, c.difficulty, got.XP, c.wantXP)
		}
		if got.Completed {
			t.Fatalf("new task must start pending")
		}
		if got.ID == "" || got.CreatedDate == "" {
			t.Fatalf("new task missing id or created date: %+v", got)
		}
	}
}

func TestAddTaskPrepends(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	e.AddTask(ctx, TaskInput{Title: "first", Duration: 10, Difficulty: DifficultyEasy, Category: CategoryWork})
	e.AddTask(ctx, TaskInput{Title: "second", Duration: 10, Difficulty: DifficultyEasy, Category: CategoryWork})

	tasks := e.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("len(tasks)=%d, want 2", len(tasks))
	}
	if tasks[0].Title != "second" || tasks[1].Title != "first" {
		t.Fatalf("tasks not newest-first: %q, %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestUpdateTaskRecomputesXP(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 30, Difficulty: DifficultyMedium, Category: CategoryWork})
	if task.XP != 60 {
		t.Fatalf("setup xp=%d, want 60", task.XP)
	}

	elite := DifficultyElite
	e.UpdateTask(ctx, task.ID, TaskUpdate{Difficulty: &elite})
	got, _ := e.Task(task.ID)
	if got.XP != 240 {
		t.Fatalf("xp after difficulty change=%d, want 240", got.XP)
	}

	title := "renamed"
	e.UpdateTask(ctx, task.ID, TaskUpdate{Title: &title})
	got, _ = e.Task(task.ID)
	if got.XP != 240 {
		t.Fatalf("xp after title-only change=%d, want 240 unchanged", got.XP)
	}
	if got.Title != "renamed" {
		t.Fatalf("title=%q, want %q", got.Title, "renamed")
	}

	dur := 60
	e.UpdateTask(ctx, task.ID, TaskUpdate{Duration: &dur})
	got, _ = e.Task(task.ID)
	if got.XP != 480 {
		t.Fatalf("xp after duration change=%d, want 480", got.XP)
	}
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 30, Difficulty: DifficultyMedium, Category: CategoryWork})

	title := "other"
	e.UpdateTask(ctx, "no-such-id", TaskUpdate{Title: &title})

	got, _ := e.Task(task.ID)
	if got.Title != "t" {
		t.Fatalf("existing task mutated by unknown-id update: %+v", got)
	}
}

func TestUpdateTaskDoesNotTouchCompletion(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 30, Difficulty: DifficultyMedium, Category: CategoryWork})
	e.CompleteTask(ctx, task.ID)
	before, _ := e.Task(task.ID)

	hard := DifficultyHard
	e.UpdateTask(ctx, task.ID, TaskUpdate{Difficulty: &hard})

	after, _ := e.Task(task.ID)
	if !after.Completed || after.CompletedDate != before.CompletedDate {
		t.Fatalf("update touched completion: before=%+v after=%+v", before, after)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 10, Difficulty: DifficultyEasy, Category: CategoryWork})
	e.DeleteTask(ctx, task.ID)
	if _, ok := e.Task(task.ID); ok {
		t.Fatalf("task still present after delete")
	}

	// Unknown id is a no-op, not a panic.
	e.DeleteTask(ctx, "no-such-id")
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{-5, 1},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", c.xp, got, c.want)
		}
	}
}

func TestCompleteTaskCreditsLedger(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 45, Difficulty: DifficultyHard, Category: CategoryHealth})

	res := e.CompleteTask(ctx, task.ID)
	p := e.Progress()
	if p.TotalXP != 180 {
		t.Fatalf("total_xp=%d, want 180", p.TotalXP)
	}
	if p.TotalTasksCompleted != 1 {
		t.Fatalf("total_tasks_completed=%d, want 1", p.TotalTasksCompleted)
	}
	if p.TotalFocusMinutes != 45 {
		t.Fatalf("total_focus_minutes=%d, want 45", p.TotalFocusMinutes)
	}
	if res.LeveledUp || res.NewLevel != 1 {
		t.Fatalf("res=%+v, want no level-up at 180 XP", res)
	}

	got, _ := e.Task(task.ID)
	if !got.Completed || got.CompletedDate == "" {
		t.Fatalf("task not stamped completed: %+v", got)
	}
}

func TestCompleteTaskLevelUpBoundary(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 480
	e.state.UserProgress.CurrentLevel = LevelForXP(480)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 40, Difficulty: DifficultyEasy, Category: CategoryWork}) // 40 XP

	res := e.CompleteTask(ctx, task.ID)
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("res=%+v, want leveledUp=true newLevel=2", res)
	}
	if p := e.Progress(); p.TotalXP != 520 || p.CurrentLevel != 2 {
		t.Fatalf("progress=%+v, want total 520 level 2", p)
	}
}

func TestCompleteTaskIsMonotonic(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 45, Difficulty: DifficultyHard, Category: CategoryWork})

	e.CompleteTask(ctx, task.ID)
	before := e.Progress()

	res := e.CompleteTask(ctx, task.ID)
	if res.LeveledUp {
		t.Fatalf("second completion reported level-up")
	}
	if res.NewLevel != before.CurrentLevel {
		t.Fatalf("second completion newLevel=%d, want unchanged %d", res.NewLevel, before.CurrentLevel)
	}
	after := e.Progress()
	if after.TotalXP != before.TotalXP || after.TotalTasksCompleted != before.TotalTasksCompleted || after.TotalFocusMinutes != before.TotalFocusMinutes {
		t.Fatalf("second completion mutated progress: before=%+v after=%+v", before, after)
	}
}

func TestCompleteTaskUnknownID(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	res := e.CompleteTask(ctx, "no-such-id")
	if res.LeveledUp || res.NewLevel != 1 {
		t.Fatalf("res=%+v, want soft failure with level 1", res)
	}
	if p := e.Progress(); p.TotalXP != 0 {
		t.Fatalf("total_xp=%d, want 0", p.TotalXP)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	e1, err := New(ctx, store, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	task := e1.AddTask(ctx, TaskInput{Title: "persisted", Duration: 25, Difficulty: DifficultyMedium, Category: CategoryLearning})
	e1.AddReward(ctx, RewardInput{Title: "coffee", XPCost: 40})
	e1.CompleteTask(ctx, task.ID)
	e1.AddBadge(ctx, "focused-session")

	e2, err := New(ctx, store, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen engine: %v", err)
	}

	if !reflect.DeepEqual(e1.Tasks(), e2.Tasks()) {
		t.Fatalf("tasks differ after reload:\n%+v\n%+v", e1.Tasks(), e2.Tasks())
	}
	if !reflect.DeepEqual(e1.Rewards(), e2.Rewards()) {
		t.Fatalf("rewards differ after reload:\n%+v\n%+v", e1.Rewards(), e2.Rewards())
	}
	if !reflect.DeepEqual(e1.Progress(), e2.Progress()) {
		t.Fatalf("progress differs after reload:\n%+v\n%+v", e1.Progress(), e2.Progress())
	}
}

func TestExportBundleSnapshot(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	fixClock(e, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	task := e.AddTask(ctx, TaskInput{Title: "t", Duration: 25, Difficulty: DifficultyMedium, Category: CategoryWork})
	e.CompleteTask(ctx, task.ID)

	b := e.ExportBundle()
	if len(b.Tasks) != 1 || b.Progress.TotalXP != 50 {
		t.Fatalf("bundle=%+v, want 1 task and 50 XP", b)
	}
	if b.ExportDate != "2026-03-10T12:00:00Z" {
		t.Fatalf("exportDate=%q", b.ExportDate)
	}
}
