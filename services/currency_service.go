package services

import (
	"errors"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CurrencyService owns the append-only currency ledger. Every balance
// mutation in the system goes through ApplyTransaction so that the ledger
// row and the player balance move as one unit.
type CurrencyService struct {
	DB *gorm.DB

	// AllowOverdraft permits debits below zero. Off by default: a debit that
	// would go negative is rejected with ErrInsufficientBalance.
	AllowOverdraft bool
}

func NewCurrencyService(db *gorm.DB, allowOverdraft bool) *CurrencyService {
	return &CurrencyService{DB: db, AllowOverdraft: allowOverdraft}
}

// TransactionFilters narrows ListTransactions.
type TransactionFilters struct {
	PlayerID string
	Type     string
	Limit    int
	Offset   int
}

// ApplyTransaction appends a ledger entry and applies its delta to the
// player's coin or gem balance atomically. The player row is locked for the
// duration of the transaction so concurrent mutations on the same player
// serialize instead of losing updates.
func (s *CurrencyService) ApplyTransaction(playerID string, currency models.CurrencyType, amount int, reason, adminID string) (*models.CurrencyTransaction, error) {
	if playerID == "" {
		return nil, validationf("playerId is required")
	}
	if !currency.Valid() {
		return nil, validationf("type must be coins or gems, got %q", currency)
	}
	if amount == 0 {
		return nil, validationf("amount must be non-zero")
	}
	if reason == "" {
		return nil, validationf("reason is required")
	}

	var created *models.CurrencyTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		entry, err := s.applyTx(tx, playerID, currency, amount, reason, adminID)
		if err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"player":   playerID,
		"currency": currency,
		"amount":   amount,
		"reason":   reason,
		"admin":    adminID,
	}).Info("currency transaction applied")
	return created, nil
}

// applyTx is the ledger write running inside an existing gorm transaction.
// Payment approval reuses it so a gem credit shares the approval's atomicity.
func (s *CurrencyService) applyTx(tx *gorm.DB, playerID string, currency models.CurrencyType, amount int, reason, adminID string) (*models.CurrencyTransaction, error) {
	var player models.Player
	err := lockForUpdate(tx).First(&player, "id = ?", playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("player %s", playerID)
		}
		return nil, storageErr(err)
	}

	switch currency {
	case models.CurrencyCoins:
		if !s.AllowOverdraft && player.Coins+amount < 0 {
			return nil, ErrInsufficientBalance
		}
		player.Coins += amount
	case models.CurrencyGems:
		if !s.AllowOverdraft && player.Gems+amount < 0 {
			return nil, ErrInsufficientBalance
		}
		player.Gems += amount
	}

	entry := models.CurrencyTransaction{
		PlayerID: playerID,
		Type:     currency,
		Amount:   amount,
		Reason:   reason,
		AdminID:  adminID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, storageErr(err)
	}
	if err := tx.Save(&player).Error; err != nil {
		return nil, storageErr(err)
	}
	return &entry, nil
}

// ListTransactions returns ledger entries in insertion order plus the total
// count matching the filters.
func (s *CurrencyService) ListTransactions(f TransactionFilters) ([]models.CurrencyTransaction, int64, error) {
	q := s.DB.Model(&models.CurrencyTransaction{})
	if f.PlayerID != "" {
		q = q.Where("player_id = ?", f.PlayerID)
	}
	if f.Type != "" {
		if !models.CurrencyType(f.Type).Valid() {
			return nil, 0, validationf("type must be coins or gems, got %q", f.Type)
		}
		q = q.Where("type = ?", f.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var items []models.CurrencyTransaction
	err := q.Order("created_at ASC, id ASC").
		Limit(limit).Offset(f.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return items, total, nil
}
