package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gaming-rewards-platform/models"

	"github.com/google/uuid"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testOwner = "00000000-0000-0000-0000-00000000aaaa"
	testDev   = "00000000-0000-0000-0000-00000000bbbb"
)

type transferCall struct {
	amount   int64
	from, to string
}

// fakeTreasury records transfers and can be told to fail the next one.
type fakeTreasury struct {
	calls    []transferCall
	failNext bool
}

func (f *fakeTreasury) Transfer(ctx context.Context, amount int64, from, to string) error {
	if f.failNext {
		f.failNext = false
		return errors.New("treasury unavailable")
	}
	f.calls = append(f.calls, transferCall{amount: amount, from: from, to: to})
	return nil
}

func (f *fakeTreasury) lastCall(t *testing.T) transferCall {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("expected a treasury transfer, got none")
	}
	return f.calls[len(f.calls)-1]
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	db       *gorm.DB
	treasury *fakeTreasury
	clock    *fakeClock

	ledger     *LedgerService
	catalog    *CatalogService
	tournament *TournamentService
	reward     *RewardService
	admin      *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.GameOwnership{},
		&models.Item{},
		&models.ItemHolding{},
		&models.Tournament{},
		&models.TournamentParticipation{},
		&models.PlatformState{},
		&models.WalletMirror{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := EnsurePlatformState(db, testOwner); err != nil {
		t.Fatalf("ensure platform state: %v", err)
	}

	treasury := &fakeTreasury{}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	engine := NewEngine(db, treasury, clock)

	return &testEnv{
		db:         db,
		treasury:   treasury,
		clock:      clock,
		ledger:     NewLedgerService(engine),
		catalog:    NewCatalogService(engine),
		tournament: NewTournamentService(engine, nil),
		reward:     NewRewardService(engine),
		admin:      NewAdminService(engine),
	}
}

// fundPlayer registers an account and deposits into it.
func (env *testEnv) fundPlayer(t *testing.T, accountID string, amount int64) {
	t.Helper()
	ctx := context.Background()
	if _, err := env.ledger.Register(ctx, accountID); err != nil {
		t.Fatalf("register %s: %v", accountID, err)
	}
	if amount > 0 {
		if _, err := env.ledger.Deposit(ctx, accountID, amount); err != nil {
			t.Fatalf("deposit %d for %s: %v", amount, accountID, err)
		}
	}
}

func (env *testEnv) platformState(t *testing.T) *models.PlatformState {
	t.Helper()
	state, err := env.admin.GetPlatformStats()
	if err != nil {
		t.Fatalf("platform stats: %v", err)
	}
	return state
}

func (env *testEnv) player(t *testing.T, accountID string) *models.Player {
	t.Helper()
	player, err := env.ledger.GetPlayerProfile(accountID)
	if err != nil {
		t.Fatalf("player %s: %v", accountID, err)
	}
	return player
}
