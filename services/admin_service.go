package services

import (
	"context"
	"fmt"

	"gaming-rewards-platform/models"
	"gaming-rewards-platform/wallet"

	"gorm.io/gorm"
)

// AdminService is the owner-only surface: the global pause gate and platform
// fee withdrawal. Administration itself is never pause-gated.
type AdminService struct {
	*Engine
}

func NewAdminService(e *Engine) *AdminService {
	return &AdminService{Engine: e}
}

// Pause blocks every mutating player and developer operation until Resume.
// Read-only queries stay available.
func (s *AdminService) Pause(ctx context.Context, caller string) error {
	return s.setPaused(caller, true)
}

func (s *AdminService) Resume(ctx context.Context, caller string) error {
	return s.setPaused(caller, false)
}

func (s *AdminService) setPaused(caller string, paused bool) error {
	return s.run(func(tx *gorm.DB, state *models.PlatformState) error {
		if caller != state.Owner {
			return ErrNotAuthorized
		}
		state.Paused = paused
		return nil
	})
}

// WithdrawPlatformFees moves accrued fees from the treasury to the owner.
// Bounded by the fee accumulator, unlike reward payouts.
func (s *AdminService) WithdrawPlatformFees(ctx context.Context, caller string, amount int64) (int64, error) {
	var remaining int64
	err := s.run(func(tx *gorm.DB, state *models.PlatformState) error {
		if caller != state.Owner {
			return ErrNotAuthorized
		}
		if amount <= 0 {
			return ErrInvalidAmount
		}
		if amount > state.AccumulatedFees {
			return ErrInsufficientBalance
		}
		if err := s.Treasury.Transfer(ctx, amount, wallet.TreasuryAccount, state.Owner); err != nil {
			return fmt.Errorf("fee withdrawal: %w", err)
		}
		state.AccumulatedFees -= amount
		remaining = state.AccumulatedFees
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// GetPlatformStats is read-only and never gated.
func (s *AdminService) GetPlatformStats() (*models.PlatformState, error) {
	var state models.PlatformState
	if err := s.DB.First(&state, models.PlatformStateID).Error; err != nil {
		return nil, fmt.Errorf("load platform state: %w", err)
	}
	return &state, nil
}

// ListWalletMirrors exposes the reconciliation table to operators.
func (s *AdminService) ListWalletMirrors() ([]models.WalletMirror, error) {
	var mirrors []models.WalletMirror
	err := s.DB.Order("account_id ASC").Find(&mirrors).Error
	return mirrors, err
}
