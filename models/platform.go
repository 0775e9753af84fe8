package models

import (
	"time"
)

// PlatformStateID is the primary key of the singleton row.
const PlatformStateID = 1

// PlatformState is the singleton owned by the administration component. Every
// mutating operation loads it inside its transaction, which also serves as the
// pause-gate check. The three ID counters advance only when the creating
// operation commits.
type PlatformState struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Owner string `gorm:"type:uuid;not null" json:"owner"` // the only identity allowed to administer

	AccumulatedFees         int64 `gorm:"not null;default:0" json:"accumulated_fees"`
	TotalRewardsDistributed int64 `gorm:"not null;default:0" json:"total_rewards_distributed"`

	LastGameID       uint64 `gorm:"not null;default:0" json:"last_game_id"`
	LastItemID       uint64 `gorm:"not null;default:0" json:"last_item_id"`
	LastTournamentID uint64 `gorm:"not null;default:0" json:"last_tournament_id"`

	Paused bool `gorm:"not null;default:false" json:"paused"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
