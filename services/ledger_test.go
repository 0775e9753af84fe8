package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gaming-rewards-platform/wallet"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	player, err := env.ledger.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if player.Balance != 0 || player.TotalSpent != 0 || player.TotalEarned != 0 {
		t.Errorf("new player has non-zero balances: %+v", player)
	}
	if player.ExperiencePoints != 0 || player.Level != 1 {
		t.Errorf("new player should start at level 1 with no xp, got level %d xp %d", player.Level, player.ExperiencePoints)
	}
	if !player.IsActive {
		t.Error("new player should be active")
	}
	if !player.RegisteredAt.Equal(env.clock.Now()) {
		t.Errorf("RegisteredAt = %v, want %v", player.RegisteredAt, env.clock.Now())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.ledger.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	env.clock.Advance(time.Hour)

	if _, err := env.ledger.Register(ctx, "alice"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second register: got %v, want ErrAlreadyRegistered", err)
	}
	if got := env.player(t, "alice"); !got.RegisteredAt.Equal(first.RegisteredAt) {
		t.Errorf("failed re-register changed RegisteredAt: %v -> %v", first.RegisteredAt, got.RegisteredAt)
	}
}

func TestDeposit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 0)

	balance, err := env.ledger.Deposit(ctx, "alice", 5_000_000)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance != 5_000_000 {
		t.Errorf("balance = %d, want 5000000", balance)
	}

	call := env.treasury.lastCall(t)
	if call.amount != 5_000_000 || call.from != "alice" || call.to != wallet.TreasuryAccount {
		t.Errorf("unexpected transfer %+v", call)
	}
}

func TestDepositBelowMinimum(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 0)

	if _, err := env.ledger.Deposit(ctx, "alice", MinPaymentAmount-1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("deposit below minimum: got %v, want ErrInvalidAmount", err)
	}
	if len(env.treasury.calls) != 0 {
		t.Error("rejected deposit should not reach the treasury")
	}
	if env.player(t, "alice").Balance != 0 {
		t.Error("rejected deposit changed the balance")
	}
}

func TestDepositUnknownPlayer(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.ledger.Deposit(context.Background(), "ghost", 10_000); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("got %v, want ErrPlayerNotFound", err)
	}
}

func TestDepositTransferFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 0)

	env.treasury.failNext = true
	if _, err := env.ledger.Deposit(ctx, "alice", 20_000); err == nil {
		t.Fatal("deposit should surface the transfer error")
	}
	if env.player(t, "alice").Balance != 0 {
		t.Error("failed transfer must not credit the balance")
	}
}

func TestWithdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 50_000)

	balance, err := env.ledger.Withdraw(ctx, "alice", 15_000)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if balance != 35_000 {
		t.Errorf("balance = %d, want 35000", balance)
	}
	call := env.treasury.lastCall(t)
	if call.amount != 15_000 || call.from != wallet.TreasuryAccount || call.to != "alice" {
		t.Errorf("unexpected transfer %+v", call)
	}
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 20_000)

	if _, err := env.ledger.Withdraw(ctx, "alice", 30_000); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("got %v, want ErrInsufficientBalance", err)
	}
	if env.player(t, "alice").Balance != 20_000 {
		t.Error("failed withdraw changed the balance")
	}
}

func TestWithdrawTransferFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 50_000)

	env.treasury.failNext = true
	if _, err := env.ledger.Withdraw(ctx, "alice", 20_000); err == nil {
		t.Fatal("withdraw should surface the transfer error")
	}
	if env.player(t, "alice").Balance != 50_000 {
		t.Error("failed transfer must not debit the balance")
	}
}

func TestLedgerPaused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fundPlayer(t, "alice", 50_000)

	if err := env.admin.Pause(ctx, testOwner); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := env.ledger.Register(ctx, "bob"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("register while paused: got %v, want ErrNotAuthorized", err)
	}
	if _, err := env.ledger.Deposit(ctx, "alice", 10_000); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("deposit while paused: got %v, want ErrNotAuthorized", err)
	}
	if _, err := env.ledger.Withdraw(ctx, "alice", 10_000); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("withdraw while paused: got %v, want ErrNotAuthorized", err)
	}

	// Reads stay available while paused.
	if _, err := env.ledger.GetPlayerProfile("alice"); err != nil {
		t.Errorf("profile read while paused: %v", err)
	}

	if err := env.admin.Resume(ctx, testOwner); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if _, err := env.ledger.Deposit(ctx, "alice", 10_000); err != nil {
		t.Errorf("deposit after resume: %v", err)
	}
}
