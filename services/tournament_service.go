package services

import (
	"errors"
	"fmt"
	"time"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TournamentService manages tournament CRUD, the scheduled → active →
// completed lifecycle and guarded player registration.
type TournamentService struct {
	DB       *gorm.DB
	Currency *CurrencyService
}

func NewTournamentService(db *gorm.DB, currency *CurrencyService) *TournamentService {
	return &TournamentService{DB: db, Currency: currency}
}

// TournamentFilters narrows ListTournaments.
type TournamentFilters struct {
	Status string
	Type   string
	Limit  int
	Offset int
}

// CreateTournamentInput carries the admin-supplied tournament fields.
type CreateTournamentInput struct {
	Name             string              `json:"name"`
	Type             string              `json:"type"`
	EntryFee         int                 `json:"entryFee"`
	EntryFeeCurrency models.CurrencyType `json:"entryFeeCurrency"`
	MaxParticipants  int                 `json:"maxParticipants"`
	PrizePool        datatypes.JSON      `json:"prizePool"`
	StartTime        time.Time           `json:"startTime"`
	EndTime          *time.Time          `json:"endTime"`
	Duration         int                 `json:"duration"`
}

// UpdateTournamentInput updates a subset of fields; nil leaves them alone.
// Status changes go through UpdateStatus, participant counts through Join.
type UpdateTournamentInput struct {
	Name             *string              `json:"name"`
	Type             *string              `json:"type"`
	EntryFee         *int                 `json:"entryFee"`
	EntryFeeCurrency *models.CurrencyType `json:"entryFeeCurrency"`
	MaxParticipants  *int                 `json:"maxParticipants"`
	PrizePool        *datatypes.JSON      `json:"prizePool"`
	StartTime        *time.Time           `json:"startTime"`
	EndTime          *time.Time           `json:"endTime"`
	Duration         *int                 `json:"duration"`
	Winner           *string              `json:"winner"`
}

// Allowed lifecycle moves. completed and cancelled are terminal.
var tournamentTransitions = map[models.TournamentStatus][]models.TournamentStatus{
	models.TournamentScheduled: {models.TournamentActive, models.TournamentCancelled},
	models.TournamentActive:    {models.TournamentCompleted, models.TournamentCancelled},
}

func (s *TournamentService) CreateTournament(in CreateTournamentInput) (*models.Tournament, error) {
	if in.Name == "" || in.Type == "" {
		return nil, validationf("name and type are required")
	}
	if in.MaxParticipants <= 0 {
		return nil, validationf("maxParticipants must be positive")
	}
	if in.StartTime.IsZero() {
		return nil, validationf("startTime is required")
	}
	if in.Duration <= 0 {
		return nil, validationf("duration must be positive")
	}
	currency := in.EntryFeeCurrency
	if currency == "" {
		currency = models.CurrencyCoins
	}
	if !currency.Valid() {
		return nil, validationf("entryFeeCurrency must be coins or gems")
	}
	prizePool := in.PrizePool
	if len(prizePool) == 0 {
		prizePool = datatypes.JSON([]byte("{}"))
	}

	t := models.Tournament{
		Name:             in.Name,
		Type:             in.Type,
		EntryFee:         in.EntryFee,
		EntryFeeCurrency: currency,
		MaxParticipants:  in.MaxParticipants,
		PrizePool:        prizePool,
		Status:           models.TournamentScheduled,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		Duration:         in.Duration,
	}
	if err := s.DB.Create(&t).Error; err != nil {
		return nil, storageErr(err)
	}
	return &t, nil
}

func (s *TournamentService) GetTournament(id string) (*models.Tournament, error) {
	var t models.Tournament
	if err := s.DB.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("tournament %s", id)
		}
		return nil, storageErr(err)
	}
	return &t, nil
}

func (s *TournamentService) ListTournaments(f TournamentFilters) ([]models.Tournament, int64, error) {
	q := s.DB.Model(&models.Tournament{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
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

	var items []models.Tournament
	err := q.Order("start_time ASC").Limit(limit).Offset(f.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return items, total, nil
}

func (s *TournamentService) UpdateTournament(id string, in UpdateTournamentInput) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var t models.Tournament
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("tournament %s", id)
			}
			return storageErr(err)
		}

		if in.Name != nil {
			t.Name = *in.Name
		}
		if in.Type != nil {
			t.Type = *in.Type
		}
		if in.EntryFee != nil {
			t.EntryFee = *in.EntryFee
		}
		if in.EntryFeeCurrency != nil {
			if !in.EntryFeeCurrency.Valid() {
				return validationf("entryFeeCurrency must be coins or gems")
			}
			t.EntryFeeCurrency = *in.EntryFeeCurrency
		}
		if in.MaxParticipants != nil {
			if *in.MaxParticipants < t.CurrentParticipants {
				return validationf("maxParticipants cannot drop below current participants (%d)", t.CurrentParticipants)
			}
			t.MaxParticipants = *in.MaxParticipants
		}
		if in.PrizePool != nil {
			t.PrizePool = *in.PrizePool
		}
		if in.StartTime != nil {
			t.StartTime = *in.StartTime
		}
		if in.EndTime != nil {
			t.EndTime = in.EndTime
		}
		if in.Duration != nil {
			t.Duration = *in.Duration
		}
		if in.Winner != nil {
			t.Winner = *in.Winner
		}

		if err := tx.Save(&t).Error; err != nil {
			return storageErr(err)
		}
		updated = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus moves a tournament along its lifecycle, rejecting anything
// not in the transition table.
func (s *TournamentService) UpdateStatus(id string, target models.TournamentStatus) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var t models.Tournament
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("tournament %s", id)
			}
			return storageErr(err)
		}

		allowed := false
		for _, next := range tournamentTransitions[t.Status] {
			if next == target {
				allowed = true
				break
			}
		}
		if !allowed {
			return transitionf("tournament %s cannot go from %s to %s", id, t.Status, target)
		}

		t.Status = target
		if target == models.TournamentCompleted && t.EndTime == nil {
			now := time.Now()
			t.EndTime = &now
		}
		if err := tx.Save(&t).Error; err != nil {
			return storageErr(err)
		}
		updated = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// JoinTournament registers a player: capacity is checked under a row lock so
// concurrent joins cannot oversell, and a non-zero entry fee is debited
// through the ledger inside the same transaction.
func (s *TournamentService) JoinTournament(id, playerID, adminID string) (*models.Tournament, error) {
	var joined *models.Tournament
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var t models.Tournament
		err := lockForUpdate(tx).First(&t, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("tournament %s", id)
			}
			return storageErr(err)
		}

		if t.Status != models.TournamentScheduled && t.Status != models.TournamentActive {
			return transitionf("tournament %s is %s and cannot be joined", id, t.Status)
		}
		if t.CurrentParticipants >= t.MaxParticipants {
			return validationf("tournament %s is full (%d/%d)", id, t.CurrentParticipants, t.MaxParticipants)
		}

		if t.EntryFee > 0 {
			reason := fmt.Sprintf("entry fee for tournament %s", t.Name)
			if _, err := s.Currency.applyTx(tx, playerID, t.EntryFeeCurrency, -t.EntryFee, reason, adminID); err != nil {
				return err
			}
		} else {
			// Free tournament still requires an existing player.
			var player models.Player
			if err := tx.First(&player, "id = ?", playerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundf("player %s", playerID)
				}
				return storageErr(err)
			}
		}

		t.CurrentParticipants++
		if err := tx.Save(&t).Error; err != nil {
			return storageErr(err)
		}
		joined = &t
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tournament":   joined.Name,
		"player":       playerID,
		"participants": joined.CurrentParticipants,
	}).Info("player joined tournament")
	return joined, nil
}

func (s *TournamentService) DeleteTournament(id string) error {
	res := s.DB.Delete(&models.Tournament{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("tournament %s", id)
	}
	return nil
}
