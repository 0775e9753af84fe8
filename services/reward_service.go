package services

import (
	"context"
	"fmt"
	"log"

	"gaming-rewards-platform/models"
	"gaming-rewards-platform/wallet"

	"gorm.io/gorm"
)

// RewardService handles owner-issued payouts. Rewards are deliberately not
// bounded by the accumulated fee balance: the fee accumulator and the funds
// the treasury actually holds are independent ledgers.
type RewardService struct {
	*Engine
}

func NewRewardService(e *Engine) *RewardService {
	return &RewardService{Engine: e}
}

// DistributeReward pays a player out of the treasury, credits the ledger
// balance and earned total, and grants experience for the reward value.
func (s *RewardService) DistributeReward(ctx context.Context, issuer, accountID string, amount int64, reason string) (*models.Player, error) {
	var rewarded models.Player
	err := s.run(func(tx *gorm.DB, state *models.PlatformState) error {
		if issuer != state.Owner || state.Paused {
			return ErrNotAuthorized
		}
		player, err := loadPlayer(tx, accountID)
		if err != nil {
			return err
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		if amount <= 0 {
			return ErrInvalidAmount
		}
		if err := s.Treasury.Transfer(ctx, amount, wallet.TreasuryAccount, accountID); err != nil {
			return fmt.Errorf("reward payout: %w", err)
		}

		player.Balance += amount
		player.TotalEarned += amount
		player.ExperiencePoints += ExperienceForAmount(amount)
		player.Level = LevelForXP(player.ExperiencePoints)
		player.IsActive = true
		if err := tx.Save(player).Error; err != nil {
			return err
		}

		state.TotalRewardsDistributed += amount
		rewarded = *player
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Reward distributed: %d to %s (%s)", amount, accountID, reason)
	return &rewarded, nil
}
