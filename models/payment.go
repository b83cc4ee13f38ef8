package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the state machine of a top-up transaction.
// pending is the only state that allows a transition.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed out of s.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed || s == PaymentCancelled
}

// PaymentTransaction records a gem top-up purchase. Approving it credits
// GemsReceived to the player through the currency ledger in the same
// database transaction that flips the status.
type PaymentTransaction struct {
	ID            string          `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID      string          `gorm:"not null;index" json:"playerId"`
	TransactionID string          `gorm:"not null;uniqueIndex" json:"transactionId"`
	PaymentMethod string          `gorm:"not null" json:"paymentMethod"` // payment_gateway, manual_topup
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"` // rupiah
	GemsReceived  int             `gorm:"not null" json:"gemsReceived"`
	Status        PaymentStatus   `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	PaymentProof  string          `json:"paymentProof,omitempty"` // URL of the transfer receipt
	AdminNotes    string          `json:"adminNotes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}
