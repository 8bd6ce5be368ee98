package engine

import (
	"context"
	"testing"
)

func TestRedeemRewardDebitsBalance(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 300

	r := e.AddReward(ctx, RewardInput{Title: "movie night", XPCost: 250})
	if r.IsUnlocked {
		t.Fatalf("new reward must start locked")
	}

	if !e.RedeemReward(ctx, r.ID) {
		t.Fatalf("redeem refused despite sufficient balance")
	}
	if p := e.Progress(); p.TotalXP != 50 {
		t.Fatalf("total_xp=%d, want 50", p.TotalXP)
	}
	got := e.Rewards()[0]
	if !got.IsUnlocked || got.RedeemedDate == "" {
		t.Fatalf("reward not stamped unlocked: %+v", got)
	}
}

func TestRedeemRewardUnaffordable(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 100

	r := e.AddReward(ctx, RewardInput{Title: "too pricey", XPCost: 250})

	if e.RedeemReward(ctx, r.ID) {
		t.Fatalf("redeem succeeded despite insufficient balance")
	}
	if p := e.Progress(); p.TotalXP != 100 {
		t.Fatalf("total_xp=%d, want 100 unchanged", p.TotalXP)
	}
	if e.Rewards()[0].IsUnlocked {
		t.Fatalf("reward unlocked despite failed redemption")
	}
}

func TestRedeemRewardIsTerminal(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 500

	r := e.AddReward(ctx, RewardInput{Title: "twice?", XPCost: 100})

	if !e.RedeemReward(ctx, r.ID) {
		t.Fatalf("first redeem refused")
	}
	if e.RedeemReward(ctx, r.ID) {
		t.Fatalf("second redeem succeeded on an unlocked reward")
	}
	if p := e.Progress(); p.TotalXP != 400 {
		t.Fatalf("total_xp=%d, want single 100 debit from 500", p.TotalXP)
	}
}

func TestRedeemRewardUnknownID(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 500

	if e.RedeemReward(ctx, "no-such-id") {
		t.Fatalf("redeem succeeded for unknown reward")
	}
	if p := e.Progress(); p.TotalXP != 500 {
		t.Fatalf("total_xp=%d, want 500 unchanged", p.TotalXP)
	}
}

func TestDeleteRewardNoRefund(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.state.UserProgress.TotalXP = 500

	r := e.AddReward(ctx, RewardInput{Title: "spent", XPCost: 200})
	e.RedeemReward(ctx, r.ID)
	e.DeleteReward(ctx, r.ID)

	if len(e.Rewards()) != 0 {
		t.Fatalf("reward still present after delete")
	}
	if p := e.Progress(); p.TotalXP != 300 {
		t.Fatalf("total_xp=%d, want 300 (no refund)", p.TotalXP)
	}
}
