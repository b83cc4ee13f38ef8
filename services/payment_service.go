package services

import (
	"errors"
	"fmt"
	"time"

	"domino-admin-system/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentService drives the pending → completed|failed|cancelled state
// machine of gem top-ups. Completing a payment credits the gems through the
// currency ledger inside the same database transaction.
type PaymentService struct {
	DB       *gorm.DB
	Currency *CurrencyService
}

func NewPaymentService(db *gorm.DB, currency *CurrencyService) *PaymentService {
	return &PaymentService{DB: db, Currency: currency}
}

// newTransactionID builds a human-scannable reference that stays unique even
// when payments are created within the same millisecond.
func newTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// PaymentFilters narrows ListPayments.
type PaymentFilters struct {
	PlayerID      string
	Status        string
	PaymentMethod string
	Limit         int
	Offset        int
}

// CreatePaymentInput describes a new pending top-up.
type CreatePaymentInput struct {
	PlayerID      string          `json:"playerId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	GemsReceived  int             `json:"gemsReceived"`
	PaymentProof  string          `json:"paymentProof"`
}

func (s *PaymentService) CreatePayment(in CreatePaymentInput) (*models.PaymentTransaction, error) {
	if in.PlayerID == "" {
		return nil, validationf("playerId is required")
	}
	if in.PaymentMethod == "" {
		return nil, validationf("paymentMethod is required")
	}
	if in.GemsReceived <= 0 {
		return nil, validationf("gemsReceived must be positive")
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, validationf("amount must be positive")
	}

	var player models.Player
	if err := s.DB.First(&player, "id = ?", in.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("player %s", in.PlayerID)
		}
		return nil, storageErr(err)
	}

	payment := models.PaymentTransaction{
		PlayerID:      in.PlayerID,
		TransactionID: newTransactionID(),
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Amount,
		GemsReceived:  in.GemsReceived,
		Status:        models.PaymentPending,
		PaymentProof:  in.PaymentProof,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, storageErr(err)
	}
	return &payment, nil
}

func (s *PaymentService) GetPayment(id string) (*models.PaymentTransaction, error) {
	var payment models.PaymentTransaction
	if err := s.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("payment transaction %s", id)
		}
		return nil, storageErr(err)
	}
	return &payment, nil
}

func (s *PaymentService) ListPayments(f PaymentFilters) ([]models.PaymentTransaction, int64, error) {
	q := s.DB.Model(&models.PaymentTransaction{})
	if f.PlayerID != "" {
		q = q.Where("player_id = ?", f.PlayerID)
	}
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentMethod != "" && f.PaymentMethod != "all" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var items []models.PaymentTransaction
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return items, total, nil
}

// ApprovePayment moves a pending payment to completed, stamps completedAt
// and credits the purchased gems through the ledger. Status flip, ledger row
// and balance update commit or roll back together.
func (s *PaymentService) ApprovePayment(id, adminID string) (*models.PaymentTransaction, error) {
	var approved *models.PaymentTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPending(tx, id)
		if err != nil {
			return err
		}

		now := time.Now()
		payment.Status = models.PaymentCompleted
		payment.CompletedAt = &now
		if err := tx.Save(payment).Error; err != nil {
			return storageErr(err)
		}

		reason := fmt.Sprintf("gem top-up %s", payment.TransactionID)
		if _, err := s.Currency.applyTx(tx, payment.PlayerID, models.CurrencyGems, payment.GemsReceived, reason, adminID); err != nil {
			return err
		}

		approved = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"payment": approved.TransactionID,
		"player":  approved.PlayerID,
		"gems":    approved.GemsReceived,
	}).Info("payment approved, gems credited")
	return approved, nil
}

// RejectPayment moves a pending payment to failed and records the admin's
// reason.
func (s *PaymentService) RejectPayment(id, reason string) (*models.PaymentTransaction, error) {
	return s.closePayment(id, models.PaymentFailed, reason)
}

// CancelPayment moves a pending payment to cancelled.
func (s *PaymentService) CancelPayment(id, reason string) (*models.PaymentTransaction, error) {
	return s.closePayment(id, models.PaymentCancelled, reason)
}

// AttachProof stores the transfer receipt URL on a payment that is still
// awaiting review. Terminal payments no longer accept proof.
func (s *PaymentService) AttachProof(id, proofURL string) (*models.PaymentTransaction, error) {
	if proofURL == "" {
		return nil, validationf("proof URL is required")
	}

	var updated *models.PaymentTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPending(tx, id)
		if err != nil {
			return err
		}
		payment.PaymentProof = proofURL
		if err := tx.Save(payment).Error; err != nil {
			return storageErr(err)
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PaymentService) closePayment(id string, target models.PaymentStatus, notes string) (*models.PaymentTransaction, error) {
	var closed *models.PaymentTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPending(tx, id)
		if err != nil {
			return err
		}
		payment.Status = target
		if notes != "" {
			payment.AdminNotes = notes
		}
		if err := tx.Save(payment).Error; err != nil {
			return storageErr(err)
		}
		closed = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// lockPending fetches a payment under a row lock and rejects any transition
// attempt out of a terminal state.
func (s *PaymentService) lockPending(tx *gorm.DB, id string) (*models.PaymentTransaction, error) {
	var payment models.PaymentTransaction
	err := lockForUpdate(tx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("payment transaction %s", id)
		}
		return nil, storageErr(err)
	}
	if payment.Status.Terminal() {
		return nil, transitionf("payment %s is already %s", payment.TransactionID, payment.Status)
	}
	return &payment, nil
}
