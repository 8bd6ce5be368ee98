package engine

import (
	"context"

	"go.uber.org/zap"

	"focusflow/internal/storage"
)

// AddBadge records a badge as earned. Idempotent: already-earned badges are
// a no-op. The engine never decides eligibility itself; callers evaluate
// criteria (see BadgeChecker) and award explicitly.
func (e *Engine) AddBadge(ctx context.Context, badgeID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, b := range e.state.UserProgress.EarnedBadges {
		if b == badgeID {
			return
		}
	}
	e.state.UserProgress.EarnedBadges = append(e.state.UserProgress.EarnedBadges, badgeID)

	e.log.Info("badge earned", zap.String("badge", badgeID))
	e.save(ctx)
}

// Badge is static catalog data, not engine state.
type Badge struct {
	ID          string
	Label       string
	Description string
	Icon        string
}

// AllBadges returns the badge catalog in display order.
func AllBadges() []Badge {
	return []Badge{
		{ID: "early-bird", Label: "Early Bird", Description: "Complete a task before 7 AM", Icon: "⚡"},
		{ID: "focused-session", Label: "Deep Focus", Description: "60+ minutes of focus", Icon: "⏱️"},
		{ID: "streak-master", Label: "Consistent", Description: "Maintain a 7-day streak", Icon: "🔥"},
		{ID: "task-crusher", Label: "Crusher", Description: "Complete 100 total tasks", Icon: "🎯"},
		{ID: "top-performer", Label: "Elite", Description: "Reach Level 20", Icon: "🏆"},
		{ID: "reward-seeker", Label: "Achiever", Description: "Redeem 10 rewards", Icon: "🎖️"},
		{ID: "night-owl", Label: "Night Owl", Description: "Focus after 11 PM", Icon: "🌙"},
		{ID: "social-butterfly", Label: "Connector", Description: "Interact with 5 friends", Icon: "🔔"},
		{ID: "mega-focus", Label: "Zen Master", Description: "4 hours of focus in one day", Icon: "🧘"},
		{ID: "perfect-week", Label: "God Mode", Description: "Complete all goals for 7 days", Icon: "📅"},
		{ID: "budget-king", Label: "Thrifty", Description: "Save 5000 XP without spending", Icon: "🎁"},
		{ID: "iron-will", Label: "Unstoppable", Description: "Maintain a 30-day streak", Icon: "🛡️"},
	}
}

// BadgeChecker evaluates badge criteria over a state snapshot. Only criteria
// derivable from recorded state are checked here; badges whose criteria live
// outside the tracker (time-of-day, social) count as earned only once awarded.
type BadgeChecker struct {
	progress storage.UserProgress
	tasks    []storage.Task
	rewards  []storage.Reward
}

func NewBadgeChecker(progress storage.UserProgress, tasks []storage.Task, rewards []storage.Reward) *BadgeChecker {
	return &BadgeChecker{progress: progress, tasks: tasks, rewards: rewards}
}

// Earned reports whether the badge has already been awarded.
func (c *BadgeChecker) Earned(badgeID string) bool {
	for _, b := range c.progress.EarnedBadges {
		if b == badgeID {
			return true
		}
	}
	return false
}

// EligibleNow returns the IDs of badges whose derivable criteria are
// currently met and that have not been awarded yet.
func (c *BadgeChecker) EligibleNow() []string {
	checks := map[string]func() bool{
		"streak-master":   func() bool { return c.progress.LongestStreak >= 7 },
		"iron-will":       func() bool { return c.progress.LongestStreak >= 30 },
		"task-crusher":    func() bool { return c.progress.TotalTasksCompleted >= 100 },
		"top-performer":   func() bool { return c.progress.CurrentLevel >= 20 },
		"reward-seeker":   func() bool { return c.redeemedCount() >= 10 },
		"budget-king":     func() bool { return c.progress.TotalXP >= 5000 },
		"focused-session": c.hasLongSession,
		"mega-focus":      c.hasFocusHeavyDay,
	}

	var out []string
	for _, b := range AllBadges() {
		check, ok := checks[b.ID]
		if !ok || c.Earned(b.ID) {
			continue
		}
		if check() {
			out = append(out, b.ID)
		}
	}
	return out
}

func (c *BadgeChecker) redeemedCount() int {
	n := 0
	for _, r := range c.rewards {
		if r.IsUnlocked {
			n++
		}
	}
	return n
}

func (c *BadgeChecker) hasLongSession() bool {
	for _, t := range c.tasks {
		if t.Completed && t.Duration >= 60 {
			return true
		}
	}
	return false
}

func (c *BadgeChecker) hasFocusHeavyDay() bool {
	byDay := map[string]int{}
	for _, t := range c.tasks {
		if t.Completed && t.CompletedDate != "" {
			byDay[t.CompletedDate] += t.Duration
		}
	}
	for _, total := range byDay {
		if total >= 240 {
			return true
		}
	}
	return false
}
