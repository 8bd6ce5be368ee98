package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(newTestDB(t))

	st := &State{
		Tasks: []Task{{
			ID:            "t1",
			Title:         "write report",
			Duration:      45,
			Difficulty:    "Hard",
			Category:      "Work",
			XP:            180,
			DueDate:       "2026-03-11",
			Completed:     true,
			CompletedDate: "2026-03-10",
			CreatedDate:   "2026-03-09T08:00:00Z",
		}},
		Rewards: []Reward{{
			ID:          "r1",
			Title:       "movie night",
			XPCost:      250,
			CreatedDate: "2026-03-09T08:05:00Z",
		}},
		UserProgress: UserProgress{
			TotalXP:             180,
			CurrentLevel:        1,
			CurrentStreak:       2,
			LongestStreak:       4,
			TotalTasksCompleted: 1,
			TotalFocusMinutes:   45,
			EarnedBadges:        []string{"focused-session"},
			LastActiveDate:      "2026-03-10",
		},
	}

	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(st, got) {
		t.Fatalf("round trip mismatch:\nsaved: %+v\nloaded: %+v", st, got)
	}
}

func TestLoadMissingBlob(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(newTestDB(t))

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state for empty store, got %+v", st)
	}
}

func TestLoadCorruptBlob(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := NewStateStore(db)

	if _, err := db.ExecContext(ctx, `INSERT INTO app_state (key, value) VALUES (?, ?)`, StateKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	_, err := s.Load(ctx)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("err=%v, want ErrCorruptState", err)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(newTestDB(t))

	first := DefaultState("2026-03-09")
	first.Tasks = append(first.Tasks, Task{ID: "t1", Title: "old"})
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := DefaultState("2026-03-10")
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tasks) != 0 {
		t.Fatalf("old tasks survived overwrite: %+v", got.Tasks)
	}
	if got.UserProgress.LastActiveDate != "2026-03-10" {
		t.Fatalf("last_active_date=%q, want second write", got.UserProgress.LastActiveDate)
	}
}

func TestDefaultState(t *testing.T) {
	st := DefaultState("2026-03-10")
	if len(st.Tasks) != 0 || len(st.Rewards) != 0 {
		t.Fatalf("defaults not empty: %+v", st)
	}
	p := st.UserProgress
	if p.TotalXP != 0 || p.CurrentLevel != 1 || p.CurrentStreak != 0 || p.LongestStreak != 0 {
		t.Fatalf("progress defaults wrong: %+v", p)
	}
	if p.EarnedBadges == nil || len(p.EarnedBadges) != 0 {
		t.Fatalf("earned_badges must be an empty set, got %#v", p.EarnedBadges)
	}
	if p.LastActiveDate != "2026-03-10" {
		t.Fatalf("last_active_date=%q", p.LastActiveDate)
	}
}
