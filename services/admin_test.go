package services

import (
	"context"
	"errors"
	"testing"

	"gaming-rewards-platform/wallet"
)

func TestPauseRequiresOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.admin.Pause(ctx, "mallory"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("got %v, want ErrNotAuthorized", err)
	}
	if env.platformState(t).Paused {
		t.Error("unauthorized pause flipped the gate")
	}
	if err := env.admin.Pause(ctx, testOwner); err != nil {
		t.Fatalf("owner pause: %v", err)
	}
	if !env.platformState(t).Paused {
		t.Error("owner pause did not take effect")
	}
	if err := env.admin.Resume(ctx, "mallory"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("got %v, want ErrNotAuthorized", err)
	}
	if err := env.admin.Resume(ctx, testOwner); err != nil {
		t.Fatalf("owner resume: %v", err)
	}
	if env.platformState(t).Paused {
		t.Error("resume did not clear the gate")
	}
}

// accrueFees runs a game purchase so the fee accumulator holds 25000.
func accrueFees(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	game, err := env.catalog.RegisterGame(ctx, testDev, "Fee Source", 1_000_000, "")
	if err != nil {
		t.Fatalf("register game: %v", err)
	}
	env.fundPlayer(t, "buyer", 1_000_000)
	if _, err := env.catalog.PurchaseGame(ctx, "buyer", game.ID); err != nil {
		t.Fatalf("purchase: %v", err)
	}
}

func TestWithdrawPlatformFees(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accrueFees(t, env)

	if _, err := env.admin.WithdrawPlatformFees(ctx, "mallory", 10_000); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("non-owner: got %v, want ErrNotAuthorized", err)
	}
	if _, err := env.admin.WithdrawPlatformFees(ctx, testOwner, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := env.admin.WithdrawPlatformFees(ctx, testOwner, 30_000); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("over accumulator: got %v, want ErrInsufficientBalance", err)
	}

	remaining, err := env.admin.WithdrawPlatformFees(ctx, testOwner, 20_000)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if remaining != 5_000 {
		t.Errorf("remaining = %d, want 5000", remaining)
	}
	call := env.treasury.lastCall(t)
	if call.amount != 20_000 || call.from != wallet.TreasuryAccount || call.to != testOwner {
		t.Errorf("unexpected transfer %+v", call)
	}
	if env.platformState(t).AccumulatedFees != 5_000 {
		t.Errorf("accumulated fees = %d, want 5000", env.platformState(t).AccumulatedFees)
	}
}

func TestWithdrawPlatformFeesTransferFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accrueFees(t, env)

	env.treasury.failNext = true
	if _, err := env.admin.WithdrawPlatformFees(ctx, testOwner, 10_000); err == nil {
		t.Fatal("withdrawal should surface the transfer error")
	}
	if env.platformState(t).AccumulatedFees != 25_000 {
		t.Errorf("failed withdrawal changed the accumulator: %d", env.platformState(t).AccumulatedFees)
	}
}

func TestAdminWorksWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accrueFees(t, env)

	if err := env.admin.Pause(ctx, testOwner); err != nil {
		t.Fatalf("pause: %v", err)
	}
	// Fee withdrawal is administration, not a player operation.
	if _, err := env.admin.WithdrawPlatformFees(ctx, testOwner, 10_000); err != nil {
		t.Errorf("fee withdrawal while paused: %v", err)
	}
	if _, err := env.admin.GetPlatformStats(); err != nil {
		t.Errorf("stats while paused: %v", err)
	}
}

func TestEnsurePlatformState(t *testing.T) {
	env := newTestEnv(t)

	state := env.platformState(t)
	if state.Owner != testOwner {
		t.Errorf("owner = %q, want %q", state.Owner, testOwner)
	}
	if state.AccumulatedFees != 0 || state.TotalRewardsDistributed != 0 || state.Paused {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if state.LastGameID != 0 || state.LastItemID != 0 || state.LastTournamentID != 0 {
		t.Errorf("ID counters should start at zero: %+v", state)
	}

	// A second call with a new owner rotates ownership without resetting anything.
	accrueFees(t, env)
	if _, err := EnsurePlatformState(env.db, "new-owner"); err != nil {
		t.Fatalf("re-ensure: %v", err)
	}
	state = env.platformState(t)
	if state.Owner != "new-owner" {
		t.Errorf("owner = %q, want new-owner", state.Owner)
	}
	if state.AccumulatedFees != 25_000 || state.LastGameID != 1 {
		t.Errorf("owner rotation reset state: %+v", state)
	}
}
