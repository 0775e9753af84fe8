package services

import (
	"context"
	"fmt"
	"math"

	"gaming-rewards-platform/models"
	"gaming-rewards-platform/wallet"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CatalogService manages games and in-game items: registration by developers,
// purchases by players, fee splits and supply tracking.
type CatalogService struct {
	*Engine
}

func NewCatalogService(e *Engine) *CatalogService {
	return &CatalogService{Engine: e}
}

// RegisterGame stores a new catalog entry for the calling developer. The game
// ID counter advances only after validation, so a rejected price never burns
// an ID.
func (s *CatalogService) RegisterGame(ctx context.Context, developer, name string, price int64, logoURL string) (*models.Game, error) {
	var game models.Game
	err := s.runGated(func(tx *gorm.DB, state *models.PlatformState) error {
		if price < MinPaymentAmount {
			return ErrInvalidAmount
		}
		state.LastGameID++
		game = models.Game{
			ID:          state.LastGameID,
			Name:        name,
			Slug:        slug.Make(name),
			Developer:   developer,
			Price:       price,
			MainLogoURL: logoURL,
			IsActive:    true,
			CreatedAt:   s.Clock.Now(),
		}
		return tx.Create(&game).Error
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// PurchaseGame debits the buyer, records ownership, pays the developer out of
// the treasury and accrues the platform fee, all inside one transaction. The
// treasury payout resolves before any write commits.
func (s *CatalogService) PurchaseGame(ctx context.Context, buyer string, gameID uint64) (*models.GameOwnership, error) {
	var ownership models.GameOwnership
	err := s.runGated(func(tx *gorm.DB, state *models.PlatformState) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", gameID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrGameNotFound
			}
			return err
		}
		if !game.IsActive {
			return ErrGameNotFound
		}
		player, err := loadPlayer(tx, buyer)
		if err != nil {
			return err
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		err = tx.First(&models.GameOwnership{}, "player_id = ? AND game_id = ?", buyer, gameID).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if player.Balance < game.Price {
			return ErrInsufficientBalance
		}

		fee, devPay := SplitFee(game.Price)
		if err := s.Treasury.Transfer(ctx, devPay, wallet.TreasuryAccount, game.Developer); err != nil {
			return fmt.Errorf("developer payout: %w", err)
		}

		player.Balance -= game.Price
		player.TotalSpent += game.Price
		player.ExperiencePoints += ExperienceForAmount(game.Price)
		player.Level = LevelForXP(player.ExperiencePoints)
		player.IsActive = true
		if err := tx.Save(player).Error; err != nil {
			return err
		}

		ownership = models.GameOwnership{
			PlayerID:    buyer,
			GameID:      gameID,
			PurchasedAt: s.Clock.Now(),
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return err
		}

		game.TotalPlayers++
		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		state.AccumulatedFees += fee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ownership, nil
}

// CreateItem adds an in-game item under a game. Only the game's developer may
// create items for it.
func (s *CatalogService) CreateItem(ctx context.Context, caller string, gameID uint64, name, description string, price int64, rarity int, maxSupply int64) (*models.Item, error) {
	var item models.Item
	err := s.runGated(func(tx *gorm.DB, state *models.PlatformState) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", gameID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrGameNotFound
			}
			return err
		}
		if !game.IsActive {
			return ErrGameNotFound
		}
		if caller != game.Developer {
			return ErrNotAuthorized
		}
		if price < 0 || rarity < 1 || rarity > 5 || maxSupply <= 0 {
			return ErrInvalidAmount
		}
		state.LastItemID++
		item = models.Item{
			ID:          state.LastItemID,
			GameID:      gameID,
			Name:        name,
			Description: description,
			Price:       price,
			Rarity:      rarity,
			MaxSupply:   maxSupply,
			Creator:     caller,
			CreatedAt:   s.Clock.Now(),
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PurchaseItem buys quantity units of an item: same fee split and XP accrual
// as a game purchase, applied to price*quantity, with the payout going to the
// item's creator. Supply never exceeds MaxSupply.
func (s *CatalogService) PurchaseItem(ctx context.Context, buyer string, itemID uint64, quantity int64) (*models.ItemHolding, error) {
	var holding models.ItemHolding
	err := s.runGated(func(tx *gorm.DB, state *models.PlatformState) error {
		var item models.Item
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrItemNotFound
			}
			return err
		}
		player, err := loadPlayer(tx, buyer)
		if err != nil {
			return err
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		if quantity <= 0 {
			return ErrInvalidAmount
		}
		if item.Supply+quantity > item.MaxSupply {
			return ErrInsufficientItems
		}
		if item.Price > 0 && quantity > math.MaxInt64/item.Price {
			return ErrInvalidAmount
		}
		totalCost := item.Price * quantity
		if player.Balance < totalCost {
			return ErrInsufficientBalance
		}

		fee, creatorPay := SplitFee(totalCost)
		if err := s.Treasury.Transfer(ctx, creatorPay, wallet.TreasuryAccount, item.Creator); err != nil {
			return fmt.Errorf("creator payout: %w", err)
		}

		player.Balance -= totalCost
		player.TotalSpent += totalCost
		player.ExperiencePoints += ExperienceForAmount(totalCost)
		player.Level = LevelForXP(player.ExperiencePoints)
		player.IsActive = true
		if err := tx.Save(player).Error; err != nil {
			return err
		}

		err = tx.First(&holding, "player_id = ? AND item_id = ?", buyer, itemID).Error
		if err == gorm.ErrRecordNotFound {
			holding = models.ItemHolding{PlayerID: buyer, ItemID: itemID}
			if err := tx.Create(&holding).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		holding.Quantity += quantity
		if err := tx.Save(&holding).Error; err != nil {
			return err
		}

		item.Supply += quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		state.AccumulatedFees += fee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// --- Read-only queries (never pause-gated) ---

func (s *CatalogService) GetGameDetails(gameID uint64) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "id = ?", gameID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *CatalogService) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.DB.Order("id ASC").Find(&games).Error
	return games, err
}

func (s *CatalogService) GetItemDetails(itemID uint64) (*models.Item, error) {
	var item models.Item
	if err := s.DB.First(&item, "id = ?", itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) ListGameItems(gameID uint64) ([]models.Item, error) {
	var items []models.Item
	err := s.DB.Where("game_id = ?", gameID).Order("id ASC").Find(&items).Error
	return items, err
}

func (s *CatalogService) GetPlayerGameOwnership(accountID string, gameID uint64) (*models.GameOwnership, error) {
	var ownership models.GameOwnership
	err := s.DB.First(&ownership, "player_id = ? AND game_id = ?", accountID, gameID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrOwnershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ownership, nil
}

// GetPlayerItemCount returns the held quantity; zero when no holding exists.
func (s *CatalogService) GetPlayerItemCount(accountID string, itemID uint64) (int64, error) {
	var holding models.ItemHolding
	err := s.DB.First(&holding, "player_id = ? AND item_id = ?", accountID, itemID).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return holding.Quantity, nil
}
