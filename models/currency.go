package models

import (
	"time"
)

// CurrencyType selects which of the two player balances a transaction hits.
type CurrencyType string

const (
	CurrencyCoins CurrencyType = "coins"
	CurrencyGems  CurrencyType = "gems"
)

// Valid reports whether t is one of the two known currencies.
func (t CurrencyType) Valid() bool {
	return t == CurrencyCoins || t == CurrencyGems
}

// CurrencyTransaction is one entry of the append-only currency ledger.
// Rows are never updated after creation; the balance delta they describe is
// applied to the player in the same database transaction that inserts them.
type CurrencyTransaction struct {
	ID        string       `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID  string       `gorm:"not null;index" json:"playerId"`
	Type      CurrencyType `gorm:"type:varchar(8);not null;index" json:"type"`
	Amount    int          `gorm:"not null" json:"amount"` // signed, negative = deduction
	Reason    string       `gorm:"not null" json:"reason"`
	AdminID   string       `gorm:"not null" json:"adminId"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
}
