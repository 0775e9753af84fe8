package services

import (
	"fmt"
	"sync"

	"gaming-rewards-platform/models"
	"gaming-rewards-platform/wallet"

	"gorm.io/gorm"
)

// Engine is the shared core behind every service: the database, the treasury
// collaborator, the time source, and the single-writer lock. Each mutating
// operation runs as one transaction under the lock: check preconditions,
// compute, perform at most one treasury transfer, then commit. If the transfer
// fails the transaction rolls back and no mutation survives.
type Engine struct {
	DB       *gorm.DB
	Treasury wallet.Treasury
	Clock    Clock

	mu sync.Mutex
}

func NewEngine(db *gorm.DB, treasury wallet.Treasury, clock Clock) *Engine {
	return &Engine{DB: db, Treasury: treasury, Clock: clock}
}

// EnsurePlatformState creates the singleton on first boot and keeps the owner
// identity current on later boots.
func EnsurePlatformState(db *gorm.DB, owner string) (*models.PlatformState, error) {
	var state models.PlatformState
	err := db.First(&state, models.PlatformStateID).Error
	if err == gorm.ErrRecordNotFound {
		state = models.PlatformState{ID: models.PlatformStateID, Owner: owner}
		if err := db.Create(&state).Error; err != nil {
			return nil, fmt.Errorf("create platform state: %w", err)
		}
		return &state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load platform state: %w", err)
	}
	if owner != "" && state.Owner != owner {
		state.Owner = owner
		if err := db.Save(&state).Error; err != nil {
			return nil, fmt.Errorf("update platform owner: %w", err)
		}
	}
	return &state, nil
}

// run executes fn as a single serialized transaction over the platform state.
// The state row is saved back on success, so counter and fee mutations commit
// together with everything fn wrote.
func (e *Engine) run(fn func(tx *gorm.DB, state *models.PlatformState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.DB.Transaction(func(tx *gorm.DB) error {
		var state models.PlatformState
		if err := tx.First(&state, models.PlatformStateID).Error; err != nil {
			return fmt.Errorf("load platform state: %w", err)
		}
		if err := fn(tx, &state); err != nil {
			return err
		}
		return tx.Save(&state).Error
	})
}

// runGated is run plus the global pause gate. Administration is the only
// component that bypasses it.
func (e *Engine) runGated(fn func(tx *gorm.DB, state *models.PlatformState) error) error {
	return e.run(func(tx *gorm.DB, state *models.PlatformState) error {
		if state.Paused {
			return ErrNotAuthorized
		}
		return fn(tx, state)
	})
}

// loadPlayer fetches an account for mutation. Inactivity checks stay with the
// callers; each operation raises ErrNotAuthorized at its own point in the
// precondition order.
func loadPlayer(tx *gorm.DB, accountID string) (*models.Player, error) {
	var player models.Player
	if err := tx.First(&player, "account_id = ?", accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}
