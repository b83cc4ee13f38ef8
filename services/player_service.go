package services

import (
	"errors"
	"strings"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

// PlayerFilters narrows ListPlayers. Zero values mean "no filter".
type PlayerFilters struct {
	Tier   string
	Status string
	Search string
	Limit  int
	Offset int
}

// CreatePlayerInput carries the admin-supplied fields of a new player.
type CreatePlayerInput struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Level             int    `json:"level"`
	XP                int    `json:"xp"`
	Coins             int    `json:"coins"`
	Gems              int    `json:"gems"`
	RankedPoints      int    `json:"rankedPoints"`
	TotalWins         int    `json:"totalWins"`
	TotalLosses       int    `json:"totalLosses"`
	UnityPlayerID     string `json:"unityPlayerId"`
	MinLevelForRanked int    `json:"minLevelForRanked"`
}

// UpdatePlayerInput updates a subset of player fields. Nil means "leave as
// is". Tier is deliberately absent: it is derived from RankedPoints and
// recomputed here on every points change.
type UpdatePlayerInput struct {
	Email             *string `json:"email"`
	Level             *int    `json:"level"`
	XP                *int    `json:"xp"`
	RankedPoints      *int    `json:"rankedPoints"`
	TotalWins         *int    `json:"totalWins"`
	TotalLosses       *int    `json:"totalLosses"`
	UnityPlayerID     *string `json:"unityPlayerId"`
	MinLevelForRanked *int    `json:"minLevelForRanked"`
}

func (s *PlayerService) GetPlayer(id string) (*models.Player, error) {
	var player models.Player
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("player %s", id)
		}
		return nil, storageErr(err)
	}
	return &player, nil
}

func (s *PlayerService) ListPlayers(f PlayerFilters) ([]models.Player, int64, error) {
	q := s.DB.Model(&models.Player{})

	if f.Tier != "" {
		if TierRank(f.Tier) < 0 {
			return nil, 0, validationf("unknown tier %q", f.Tier)
		}
		q = q.Where("tier = ?", f.Tier)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var players []models.Player
	err := q.Order("created_at ASC, id ASC").
		Limit(limit).Offset(f.Offset).
		Find(&players).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return players, total, nil
}

func (s *PlayerService) CreatePlayer(in CreatePlayerInput) (*models.Player, error) {
	if in.Username == "" || in.Email == "" {
		return nil, validationf("username and email are required")
	}

	var existing models.Player
	err := s.DB.First(&existing, "username = ?", in.Username).Error
	if err == nil {
		return nil, validationf("username %q already taken", in.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	level := in.Level
	if level < 1 {
		level = 1
	}
	minRanked := in.MinLevelForRanked
	if minRanked <= 0 {
		minRanked = 5
	}

	player := models.Player{
		Username:          in.Username,
		Email:             in.Email,
		Level:             level,
		XP:                in.XP,
		Coins:             in.Coins,
		Gems:              in.Gems,
		RankedPoints:      in.RankedPoints,
		Tier:              ClassifyTier(in.RankedPoints),
		TotalWins:         in.TotalWins,
		TotalLosses:       in.TotalLosses,
		Status:            models.PlayerStatusActive,
		UnityPlayerID:     in.UnityPlayerID,
		MinLevelForRanked: minRanked,
	}
	if err := s.DB.Create(&player).Error; err != nil {
		return nil, storageErr(err)
	}
	return &player, nil
}

func (s *PlayerService) UpdatePlayer(id string, in UpdatePlayerInput) (*models.Player, error) {
	var updated *models.Player
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("player %s", id)
			}
			return storageErr(err)
		}

		if in.Email != nil {
			player.Email = *in.Email
		}
		if in.Level != nil {
			player.Level = *in.Level
		}
		if in.XP != nil {
			player.XP = *in.XP
		}
		if in.TotalWins != nil {
			player.TotalWins = *in.TotalWins
		}
		if in.TotalLosses != nil {
			player.TotalLosses = *in.TotalLosses
		}
		if in.UnityPlayerID != nil {
			player.UnityPlayerID = *in.UnityPlayerID
		}
		if in.MinLevelForRanked != nil {
			player.MinLevelForRanked = *in.MinLevelForRanked
		}
		if in.RankedPoints != nil {
			player.RankedPoints = *in.RankedPoints
			player.Tier = ClassifyTier(player.RankedPoints)
		}

		if err := tx.Save(&player).Error; err != nil {
			return storageErr(err)
		}
		updated = &player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AdjustRankedPoints applies a signed delta to a player's ranked points and
// re-runs the tier classifier. Points floor at zero, matching the classifier
// clamp.
func (s *PlayerService) AdjustRankedPoints(id string, delta int) (*models.Player, error) {
	var updated *models.Player
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("player %s", id)
			}
			return storageErr(err)
		}

		oldTier := player.Tier
		player.RankedPoints += delta
		if player.RankedPoints < 0 {
			player.RankedPoints = 0
		}
		player.Tier = ClassifyTier(player.RankedPoints)

		if err := tx.Save(&player).Error; err != nil {
			return storageErr(err)
		}
		if player.Tier != oldTier {
			log.WithFields(log.Fields{
				"player": player.Username,
				"from":   oldTier,
				"to":     player.Tier,
				"points": player.RankedPoints,
			}).Info("player changed tier")
		}
		updated = &player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// BanPlayer sets the player status to banned. Reason and duration (days) are
// recorded in the log only; no automatic unban is scheduled. Banning an
// already-banned player is a no-op.
func (s *PlayerService) BanPlayer(id, reason string, durationDays int) (*models.Player, error) {
	player, err := s.setStatus(id, models.PlayerStatusBanned)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"player":   player.Username,
		"reason":   reason,
		"duration": durationDays,
	}).Warn("player banned")
	return player, nil
}

// UnbanPlayer returns a banned or suspended player to active. Idempotent.
func (s *PlayerService) UnbanPlayer(id string) (*models.Player, error) {
	return s.setStatus(id, models.PlayerStatusActive)
}

// SuspendPlayer sets the player status to suspended. Idempotent.
func (s *PlayerService) SuspendPlayer(id string) (*models.Player, error) {
	return s.setStatus(id, models.PlayerStatusSuspended)
}

// setStatus is the shared idempotent status setter: moving to the current
// state changes nothing and is not an error. Repeated calls always converge
// on the same record.
func (s *PlayerService) setStatus(id string, target models.PlayerStatus) (*models.Player, error) {
	var updated *models.Player
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("player %s", id)
			}
			return storageErr(err)
		}
		if player.Status != target {
			player.Status = target
			if err := tx.Save(&player).Error; err != nil {
				return storageErr(err)
			}
		}
		updated = &player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
