package models

import (
	"time"
)

// Player is the ledger account for one external identity. The balance is the
// single source of truth for everything the player can spend inside the
// platform; the treasury service only sees deposits and withdrawals.
//
// Invariant: Balance = deposits - withdrawals - purchases - entry fees + rewards, always >= 0.
type Player struct {
	AccountID string `gorm:"primaryKey;type:uuid" json:"account_id"` // external user ID from the gateway

	Balance          int64 `gorm:"not null;default:0" json:"balance"`
	TotalSpent       int64 `gorm:"not null;default:0" json:"total_spent"`
	TotalEarned      int64 `gorm:"not null;default:0" json:"total_earned"`
	ExperiencePoints int64 `gorm:"not null;default:0" json:"experience_points"` // monotonic, derived from spend
	Level            int   `gorm:"not null;default:1" json:"level"`

	// Set true on every write path. There is no deactivation operation; the
	// flag is kept for structural completeness.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
