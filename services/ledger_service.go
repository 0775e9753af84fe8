package services

import (
	"context"
	"fmt"

	"gaming-rewards-platform/models"
	"gaming-rewards-platform/wallet"

	"gorm.io/gorm"
)

// LedgerService owns the player lifecycle and balance mutations.
type LedgerService struct {
	*Engine
}

func NewLedgerService(e *Engine) *LedgerService {
	return &LedgerService{Engine: e}
}

// Register creates the player record for an identity. Registering twice fails
// with ErrAlreadyRegistered and leaves the first record untouched.
func (s *LedgerService) Register(ctx context.Context, accountID string) (*models.Player, error) {
	var player models.Player
	err := s.runGated(func(tx *gorm.DB, _ *models.PlatformState) error {
		err := tx.First(&models.Player{}, "account_id = ?", accountID).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		player = models.Player{
			AccountID:    accountID,
			Level:        1,
			IsActive:     true,
			RegisteredAt: s.Clock.Now(),
		}
		return tx.Create(&player).Error
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Deposit moves funds from the caller's external account into the treasury and
// credits the ledger balance. The treasury call happens before the credit;
// if it fails nothing changes.
func (s *LedgerService) Deposit(ctx context.Context, accountID string, amount int64) (int64, error) {
	var balance int64
	err := s.runGated(func(tx *gorm.DB, _ *models.PlatformState) error {
		player, err := loadPlayer(tx, accountID)
		if err != nil {
			return err
		}
		if amount < MinPaymentAmount {
			return ErrInvalidAmount
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		if err := s.Treasury.Transfer(ctx, amount, accountID, wallet.TreasuryAccount); err != nil {
			return fmt.Errorf("deposit transfer: %w", err)
		}
		player.Balance += amount
		player.IsActive = true
		balance = player.Balance
		return tx.Save(player).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Withdraw debits the ledger balance and pays the caller out of the treasury.
func (s *LedgerService) Withdraw(ctx context.Context, accountID string, amount int64) (int64, error) {
	var balance int64
	err := s.runGated(func(tx *gorm.DB, _ *models.PlatformState) error {
		player, err := loadPlayer(tx, accountID)
		if err != nil {
			return err
		}
		if amount < MinPaymentAmount {
			return ErrInvalidAmount
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		if amount > player.Balance {
			return ErrInsufficientBalance
		}
		if err := s.Treasury.Transfer(ctx, amount, wallet.TreasuryAccount, accountID); err != nil {
			return fmt.Errorf("withdraw transfer: %w", err)
		}
		player.Balance -= amount
		player.IsActive = true
		balance = player.Balance
		return tx.Save(player).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// GetPlayerProfile is read-only and never pause-gated.
func (s *LedgerService) GetPlayerProfile(accountID string) (*models.Player, error) {
	var player models.Player
	if err := s.DB.First(&player, "account_id = ?", accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}
