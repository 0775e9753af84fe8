package models

import (
	"time"
)

// WalletMirror is a read-only reconciliation copy of treasury-side account
// balances, refreshed by the wallet sync worker. The ledger never reads it;
// it exists so operators can compare external funds against ledger state.
// Table name: wallet_mirrors
type WalletMirror struct {
	ID        string `gorm:"primaryKey;type:uuid;not null" json:"id"`
	AccountID string `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`

	Chain   string `gorm:"type:varchar(64)" json:"chain"`
	Token   string `gorm:"type:varchar(64)" json:"token"`
	Balance int64  `gorm:"not null;default:0" json:"balance"`

	LastBalanceCheckAt time.Time `gorm:"not null" json:"last_balance_check_at"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}
