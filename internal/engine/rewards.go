package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focusflow/internal/storage"
)

// RewardInput carries the caller-supplied fields for a new reward.
type RewardInput struct {
	Title  string
	XPCost int
}

// AddReward creates a locked reward with a fresh ID and prepends it to the
// collection.
func (e *Engine) AddReward(ctx context.Context, in RewardInput) storage.Reward {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := storage.Reward{
		ID:          uuid.NewString(),
		Title:       in.Title,
		XPCost:      in.XPCost,
		CreatedDate: e.now().UTC().Format(time.RFC3339),
	}
	e.state.Rewards = append([]storage.Reward{r}, e.state.Rewards...)

	e.log.Info("reward added", zap.String("id", r.ID), zap.Int("xp_cost", r.XPCost))
	e.save(ctx)
	return r
}

// RedeemReward unlocks the reward and debits its cost from the XP balance.
// Returns false with no mutation when the reward is missing, already
// unlocked, or unaffordable. The affordability check is the only thing
// keeping total XP non-negative, so it must happen before any write.
func (e *Engine) RedeemReward(ctx context.Context, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.findReward(id)
	if r == nil || r.IsUnlocked {
		return false
	}
	p := &e.state.UserProgress
	if p.TotalXP < r.XPCost {
		e.log.Debug("redemption unaffordable",
			zap.String("id", id),
			zap.Int("xp_cost", r.XPCost),
			zap.Int("total_xp", p.TotalXP))
		return false
	}

	r.IsUnlocked = true
	r.RedeemedDate = e.today()
	p.TotalXP -= r.XPCost

	e.log.Info("reward redeemed",
		zap.String("id", id),
		zap.Int("xp_cost", r.XPCost),
		zap.Int("total_xp", p.TotalXP))
	e.save(ctx)
	return true
}

// DeleteReward removes the reward with the given ID. No refunds: spent XP
// stays spent, and an unredeemed reward never held any.
func (e *Engine) DeleteReward(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Rewards {
		if e.state.Rewards[i].ID == id {
			e.state.Rewards = append(e.state.Rewards[:i], e.state.Rewards[i+1:]...)
			e.save(ctx)
			return
		}
	}
}
