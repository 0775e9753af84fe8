package models

import (
	"time"
)

// Item is an in-game purchasable created by the owning game's developer.
// Supply never exceeds MaxSupply.
type Item struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	GameID uint64 `gorm:"not null;index" json:"game_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Rarity      int    `gorm:"not null" json:"rarity"` // 1 (common) .. 5 (legendary)

	Supply    int64 `gorm:"not null;default:0" json:"supply"`
	MaxSupply int64 `gorm:"not null" json:"max_supply"`

	Creator string `gorm:"type:uuid;not null" json:"creator"` // receives the payout on every sale

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ItemHolding is a player's quantity of one item, keyed by (player, item).
type ItemHolding struct {
	PlayerID string `gorm:"primaryKey;type:uuid" json:"player_id"`
	ItemID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"item_id"`

	Quantity int64 `gorm:"not null;default:0" json:"quantity"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
