package services

import (
	"errors"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModerationService owns the anti-cheat review queue.
type ModerationService struct {
	DB *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{DB: db}
}

// AntiCheatFilters narrows ListLogs.
type AntiCheatFilters struct {
	PlayerID      string
	DetectionType string
	RiskLevel     string
	Status        string
	Limit         int
	Offset        int
}

// CreateLogInput describes a new detection. Manual reviews may arrive
// pre-resolved with the action already decided.
type CreateLogInput struct {
	PlayerID      string                  `json:"playerId"`
	DetectionType models.DetectionType    `json:"detectionType"`
	RiskLevel     models.RiskLevel        `json:"riskLevel"`
	Status        models.AntiCheatStatus  `json:"status"`
	Action        *models.AntiCheatAction `json:"action"`
	Details       datatypes.JSON          `json:"details"`
}

// ReviewLogInput closes a review: target status plus the action taken.
// A nil action on an ignore means "no action".
type ReviewLogInput struct {
	Status models.AntiCheatStatus  `json:"status"`
	Action *models.AntiCheatAction `json:"action"`
}

var detectionTypes = map[models.DetectionType]bool{
	models.DetectionAFK:               true,
	models.DetectionSuspiciousPattern: true,
	models.DetectionTeamAbuse:         true,
	models.DetectionManualReview:      true,
}

var riskLevels = map[models.RiskLevel]bool{
	models.RiskLow:    true,
	models.RiskMedium: true,
	models.RiskHigh:   true,
}

var anticheatActions = map[models.AntiCheatAction]bool{
	models.ActionWarning:  true,
	models.ActionBanned:   true,
	models.ActionReviewed: true,
}

func (s *ModerationService) CreateLog(in CreateLogInput) (*models.AntiCheatLog, error) {
	if in.PlayerID == "" {
		return nil, validationf("playerId is required")
	}
	if !detectionTypes[in.DetectionType] {
		return nil, validationf("unknown detection type %q", in.DetectionType)
	}
	if !riskLevels[in.RiskLevel] {
		return nil, validationf("unknown risk level %q", in.RiskLevel)
	}

	var player models.Player
	if err := s.DB.First(&player, "id = ?", in.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("player %s", in.PlayerID)
		}
		return nil, storageErr(err)
	}

	status := in.Status
	if status == "" {
		status = models.AntiCheatUnderReview
	}
	if status != models.AntiCheatUnderReview && status != models.AntiCheatResolved && status != models.AntiCheatIgnored {
		return nil, validationf("unknown status %q", status)
	}
	if in.Action != nil && !anticheatActions[*in.Action] {
		return nil, validationf("unknown action %q", *in.Action)
	}

	entry := models.AntiCheatLog{
		PlayerID:      in.PlayerID,
		DetectionType: in.DetectionType,
		RiskLevel:     in.RiskLevel,
		Status:        status,
		Action:        in.Action,
		Details:       in.Details,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, storageErr(err)
	}

	log.WithFields(log.Fields{
		"player":    in.PlayerID,
		"detection": in.DetectionType,
		"risk":      in.RiskLevel,
	}).Info("anti-cheat log created")
	return &entry, nil
}

// ReviewLog transitions a log out of under_review. Terminal entries cannot
// be reopened or re-closed.
func (s *ModerationService) ReviewLog(id string, in ReviewLogInput) (*models.AntiCheatLog, error) {
	if in.Status != models.AntiCheatResolved && in.Status != models.AntiCheatIgnored {
		return nil, validationf("status must be resolved or ignored, got %q", in.Status)
	}
	if in.Action != nil && !anticheatActions[*in.Action] {
		return nil, validationf("unknown action %q", *in.Action)
	}

	var reviewed *models.AntiCheatLog
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.AntiCheatLog
		if err := tx.First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("anti-cheat log %s", id)
			}
			return storageErr(err)
		}
		if entry.Status != models.AntiCheatUnderReview {
			return transitionf("anti-cheat log %s is already %s", id, entry.Status)
		}

		entry.Status = in.Status
		entry.Action = in.Action
		if err := tx.Save(&entry).Error; err != nil {
			return storageErr(err)
		}
		reviewed = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

func (s *ModerationService) ListLogs(f AntiCheatFilters) ([]models.AntiCheatLog, int64, error) {
	q := s.DB.Model(&models.AntiCheatLog{})
	if f.PlayerID != "" {
		q = q.Where("player_id = ?", f.PlayerID)
	}
	if f.DetectionType != "" {
		q = q.Where("detection_type = ?", f.DetectionType)
	}
	if f.RiskLevel != "" {
		q = q.Where("risk_level = ?", f.RiskLevel)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var items []models.AntiCheatLog
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return items, total, nil
}
