package models

import (
	"time"
)

// Tournament is a time-boxed event created by the game's developer. Entry fees
// stay inside the ledger as the prize pool; no payout flow exists yet, so
// Winner is never assigned.
type Tournament struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	GameID uint64 `gorm:"not null;index" json:"game_id"`

	Name     string `gorm:"not null" json:"name"`
	EntryFee int64  `gorm:"not null" json:"entry_fee"`

	PrizePool           int64 `gorm:"not null;default:0" json:"prize_pool"` // sum of collected entry fees
	MaxParticipants     int   `gorm:"not null" json:"max_participants"`
	CurrentParticipants int   `gorm:"not null;default:0" json:"current_participants"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	IsActive bool    `gorm:"not null;default:true" json:"is_active"`
	Winner   *string `gorm:"type:uuid" json:"winner,omitempty"` // settlement extension point

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TournamentParticipation is a player's membership in a tournament, keyed by
// (tournament, player). Score is overwritten on each submission; Rank and
// PrizeClaimed belong to the unimplemented settlement flow.
type TournamentParticipation struct {
	TournamentID uint64 `gorm:"primaryKey;autoIncrement:false" json:"tournament_id"`
	PlayerID     string `gorm:"primaryKey;type:uuid" json:"player_id"`

	EntryTime    time.Time `gorm:"not null" json:"entry_time"`
	Score        int64     `gorm:"not null;default:0" json:"score"`
	Rank         int       `gorm:"not null;default:0" json:"rank"`
	PrizeClaimed bool      `gorm:"not null;default:false" json:"prize_claimed"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
