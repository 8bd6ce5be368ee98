package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// UpdateStreak recomputes the consecutive-day streak from the gap between
// today and the last active date:
//
//	gap == 1  consecutive day, streak increments
//	gap  > 1  streak broken, reset to 1 (today is day one)
//	gap == 0  already counted today, no change
//	gap  < 0  clock rolled back; clamp to no-op
//
// In every case the longest streak absorbs the new value and the last
// active date advances to today, so a rolled-back clock self-heals at the
// next real day boundary.
func (e *Engine) UpdateStreak(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := &e.state.UserProgress
	today := e.today()

	streak := p.CurrentStreak
	gap, ok := daysBetween(p.LastActiveDate, today)
	if !ok {
		e.log.Warn("unparseable last active date", zap.String("last_active_date", p.LastActiveDate))
	}
	if ok {
		switch {
		case gap == 1:
			streak++
		case gap > 1:
			streak = 1
		}
	}

	p.CurrentStreak = streak
	if streak > p.LongestStreak {
		p.LongestStreak = streak
	}
	p.LastActiveDate = today

	e.save(ctx)
}

// daysBetween returns the whole-day difference to - from for two calendar
// dates. ok is false when either date fails to parse.
func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a) / (24 * time.Hour)), true
}
