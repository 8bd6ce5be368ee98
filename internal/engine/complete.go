package engine

import (
	"context"

	"go.uber.org/zap"
)

// CompleteResult reports the outcome of a completion attempt. A missing or
// already-completed task yields LeveledUp=false with the level unchanged;
// callers branch on the result rather than on an error.
type CompleteResult struct {
	LeveledUp bool
	NewLevel  int
}

// CompleteTask marks the task done and credits it to the progress ledger as
// one state transition: completed flag and date, XP, level, completion and
// focus-minute counters, last active date. Completion is terminal.
//
// Streak recomputation is deliberately not part of this transition; callers
// invoke UpdateStreak separately.
func (e *Engine) CompleteTask(ctx context.Context, id string) CompleteResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := &e.state.UserProgress
	t := e.findTask(id)
	if t == nil || t.Completed {
		e.log.Debug("completion refused", zap.String("id", id), zap.Bool("found", t != nil))
		return CompleteResult{LeveledUp: false, NewLevel: p.CurrentLevel}
	}

	today := e.today()
	newXP := p.TotalXP + t.XP
	newLevel := LevelForXP(newXP)
	leveledUp := newLevel > p.CurrentLevel

	t.Completed = true
	t.CompletedDate = today
	p.TotalXP = newXP
	p.CurrentLevel = newLevel
	p.TotalTasksCompleted++
	p.TotalFocusMinutes += t.Duration
	p.LastActiveDate = today

	e.log.Info("task completed",
		zap.String("id", id),
		zap.Int("xp_awarded", t.XP),
		zap.Int("total_xp", newXP),
		zap.Int("level", newLevel),
		zap.Bool("level_up", leveledUp))
	e.save(ctx)
	return CompleteResult{LeveledUp: leveledUp, NewLevel: newLevel}
}
