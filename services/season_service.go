package services

import (
	"errors"
	"time"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeasonService manages ranked seasons plus the level/daily reward tables
// and live-ops events.
type SeasonService struct {
	DB *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db}
}

// ---- Seasons ----

type SeasonInput struct {
	Name      string         `json:"name"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	Rewards   datatypes.JSON `json:"rewards"`
}

func (s *SeasonService) ListSeasons() ([]models.SeasonConfig, error) {
	var seasons []models.SeasonConfig
	if err := s.DB.Order("start_date DESC").Find(&seasons).Error; err != nil {
		return nil, storageErr(err)
	}
	return seasons, nil
}

func (s *SeasonService) GetActiveSeason() (*models.SeasonConfig, error) {
	var season models.SeasonConfig
	err := s.DB.First(&season, "is_active = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("no active season")
		}
		return nil, storageErr(err)
	}
	return &season, nil
}

func (s *SeasonService) CreateSeason(in SeasonInput) (*models.SeasonConfig, error) {
	if in.Name == "" {
		return nil, validationf("name is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return nil, validationf("endDate must be after startDate")
	}
	rewards := in.Rewards
	if len(rewards) == 0 {
		rewards = datatypes.JSON([]byte("{}"))
	}

	season := models.SeasonConfig{
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Rewards:   rewards,
	}
	if err := s.DB.Create(&season).Error; err != nil {
		return nil, storageErr(err)
	}
	return &season, nil
}

func (s *SeasonService) UpdateSeason(id string, in SeasonInput) (*models.SeasonConfig, error) {
	var updated *models.SeasonConfig
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var season models.SeasonConfig
		if err := tx.First(&season, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("season %s", id)
			}
			return storageErr(err)
		}
		if in.Name != "" {
			season.Name = in.Name
		}
		if !in.StartDate.IsZero() {
			season.StartDate = in.StartDate
		}
		if !in.EndDate.IsZero() {
			season.EndDate = in.EndDate
		}
		if len(in.Rewards) > 0 {
			season.Rewards = in.Rewards
		}
		if !season.EndDate.After(season.StartDate) {
			return validationf("endDate must be after startDate")
		}
		if err := tx.Save(&season).Error; err != nil {
			return storageErr(err)
		}
		updated = &season
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ActivateSeason marks one season active and deactivates every other one in
// the same transaction, so exactly one season is ever active.
func (s *SeasonService) ActivateSeason(id string) (*models.SeasonConfig, error) {
	var activated *models.SeasonConfig
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var season models.SeasonConfig
		if err := tx.First(&season, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("season %s", id)
			}
			return storageErr(err)
		}

		if err := tx.Model(&models.SeasonConfig{}).
			Where("id <> ?", id).
			Update("is_active", false).Error; err != nil {
			return storageErr(err)
		}

		season.IsActive = true
		if err := tx.Save(&season).Error; err != nil {
			return storageErr(err)
		}
		activated = &season
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.WithField("season", activated.Name).Info("season activated")
	return activated, nil
}

// ---- Level rewards (level is a unique key) ----

type LevelRewardInput struct {
	Level      int    `json:"level"`
	XPRequired int    `json:"xpRequired"`
	CoinReward int    `json:"coinReward"`
	GemReward  int    `json:"gemReward"`
	ItemUnlock string `json:"itemUnlock"`
}

func (s *SeasonService) ListLevelRewards() ([]models.LevelReward, error) {
	var rewards []models.LevelReward
	if err := s.DB.Order("level ASC").Find(&rewards).Error; err != nil {
		return nil, storageErr(err)
	}
	return rewards, nil
}

func (s *SeasonService) CreateLevelReward(in LevelRewardInput) (*models.LevelReward, error) {
	if in.Level <= 0 {
		return nil, validationf("level must be positive")
	}
	if in.XPRequired < 0 {
		return nil, validationf("xpRequired cannot be negative")
	}

	var existing models.LevelReward
	err := s.DB.First(&existing, "level = ?", in.Level).Error
	if err == nil {
		return nil, validationf("reward for level %d already exists", in.Level)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	reward := models.LevelReward{
		Level:      in.Level,
		XPRequired: in.XPRequired,
		CoinReward: in.CoinReward,
		GemReward:  in.GemReward,
		ItemUnlock: in.ItemUnlock,
	}
	if err := s.DB.Create(&reward).Error; err != nil {
		return nil, storageErr(err)
	}
	return &reward, nil
}

// UpdateLevelRewardInput updates a subset of fields; nil leaves them alone.
// Level itself is the unique key and cannot be changed after creation.
type UpdateLevelRewardInput struct {
	XPRequired *int    `json:"xpRequired"`
	CoinReward *int    `json:"coinReward"`
	GemReward  *int    `json:"gemReward"`
	ItemUnlock *string `json:"itemUnlock"`
}

func (s *SeasonService) UpdateLevelReward(id string, in UpdateLevelRewardInput) (*models.LevelReward, error) {
	var reward models.LevelReward
	if err := s.DB.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("level reward %s", id)
		}
		return nil, storageErr(err)
	}

	if in.XPRequired != nil {
		if *in.XPRequired < 0 {
			return nil, validationf("xpRequired cannot be negative")
		}
		reward.XPRequired = *in.XPRequired
	}
	if in.CoinReward != nil {
		reward.CoinReward = *in.CoinReward
	}
	if in.GemReward != nil {
		reward.GemReward = *in.GemReward
	}
	if in.ItemUnlock != nil {
		reward.ItemUnlock = *in.ItemUnlock
	}
	if err := s.DB.Save(&reward).Error; err != nil {
		return nil, storageErr(err)
	}
	return &reward, nil
}

// ---- Daily rewards (day is a unique key) ----

type DailyRewardInput struct {
	Day        int    `json:"day"`
	CoinReward int    `json:"coinReward"`
	GemReward  int    `json:"gemReward"`
	ItemReward string `json:"itemReward"`
}

func (s *SeasonService) ListDailyRewards() ([]models.DailyReward, error) {
	var rewards []models.DailyReward
	if err := s.DB.Order("day ASC").Find(&rewards).Error; err != nil {
		return nil, storageErr(err)
	}
	return rewards, nil
}

func (s *SeasonService) CreateDailyReward(in DailyRewardInput) (*models.DailyReward, error) {
	if in.Day <= 0 {
		return nil, validationf("day must be positive")
	}

	var existing models.DailyReward
	err := s.DB.First(&existing, "day = ?", in.Day).Error
	if err == nil {
		return nil, validationf("reward for day %d already exists", in.Day)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	reward := models.DailyReward{
		Day:        in.Day,
		CoinReward: in.CoinReward,
		GemReward:  in.GemReward,
		ItemReward: in.ItemReward,
	}
	if err := s.DB.Create(&reward).Error; err != nil {
		return nil, storageErr(err)
	}
	return &reward, nil
}

// UpdateDailyRewardInput updates a subset of fields; nil leaves them alone.
// Day is the unique key and cannot be changed after creation.
type UpdateDailyRewardInput struct {
	CoinReward *int    `json:"coinReward"`
	GemReward  *int    `json:"gemReward"`
	ItemReward *string `json:"itemReward"`
}

func (s *SeasonService) UpdateDailyReward(id string, in UpdateDailyRewardInput) (*models.DailyReward, error) {
	var reward models.DailyReward
	if err := s.DB.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("daily reward %s", id)
		}
		return nil, storageErr(err)
	}

	if in.CoinReward != nil {
		reward.CoinReward = *in.CoinReward
	}
	if in.GemReward != nil {
		reward.GemReward = *in.GemReward
	}
	if in.ItemReward != nil {
		reward.ItemReward = *in.ItemReward
	}
	if err := s.DB.Save(&reward).Error; err != nil {
		return nil, storageErr(err)
	}
	return &reward, nil
}

// ---- Events ----

type EventInput struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Multiplier  int       `json:"multiplier"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

type EventFilters struct {
	IsActive *bool
	Type     string
	Limit    int
	Offset   int
}

func (s *SeasonService) ListEvents(f EventFilters) ([]models.Event, int64, error) {
	q := s.DB.Model(&models.Event{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
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

	var events []models.Event
	err := q.Order("start_time DESC").Limit(limit).Offset(f.Offset).Find(&events).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return events, total, nil
}

func (s *SeasonService) CreateEvent(in EventInput) (*models.Event, error) {
	if in.Name == "" || in.Type == "" {
		return nil, validationf("name and type are required")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() || !in.EndTime.After(in.StartTime) {
		return nil, validationf("endTime must be after startTime")
	}
	multiplier := in.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	event := models.Event{
		Name:        in.Name,
		Type:        in.Type,
		Multiplier:  multiplier,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, storageErr(err)
	}
	return &event, nil
}

func (s *SeasonService) UpdateEvent(id string, in EventInput) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("event %s", id)
		}
		return nil, storageErr(err)
	}

	if in.Name != "" {
		event.Name = in.Name
	}
	if in.Type != "" {
		event.Type = in.Type
	}
	if in.Multiplier >= 1 {
		event.Multiplier = in.Multiplier
	}
	if in.Description != "" {
		event.Description = in.Description
	}
	if !in.StartTime.IsZero() {
		event.StartTime = in.StartTime
	}
	if !in.EndTime.IsZero() {
		event.EndTime = in.EndTime
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, validationf("endTime must be after startTime")
	}
	if err := s.DB.Save(&event).Error; err != nil {
		return nil, storageErr(err)
	}
	return &event, nil
}
