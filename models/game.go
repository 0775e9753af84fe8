package models

import (
	"time"
)

// Game is a catalog entry registered by a developer. IDs come from the
// platform counter, not the database, so a failed registration never burns one.
type Game struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"index" json:"slug"`

	Developer string `gorm:"type:uuid;not null;index" json:"developer"` // external user ID
	Price     int64  `gorm:"not null" json:"price"`

	// Reserved for a future settlement flow; no operation mutates it.
	RewardPool int64 `gorm:"not null;default:0" json:"reward_pool"`

	MainLogoURL string `json:"main_logo_url,omitempty"`

	IsActive     bool  `gorm:"not null;default:true" json:"is_active"`
	TotalPlayers int64 `gorm:"not null;default:0" json:"total_players"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// GameOwnership records that a player bought a game. Existence of the row is
// ownership; creation is a one-time idempotent event keyed by (player, game).
type GameOwnership struct {
	PlayerID string `gorm:"primaryKey;type:uuid" json:"player_id"`
	GameID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`

	PurchasedAt time.Time `gorm:"not null" json:"purchased_at"`

	// Gameplay stats, initialized at purchase and fed by the game backends.
	Playtime     int64 `gorm:"not null;default:0" json:"playtime"`
	HighScore    int64 `gorm:"not null;default:0" json:"high_score"`
	Achievements int64 `gorm:"not null;default:0" json:"achievements"`
}
