package services

import (
	"time"

	"domino-admin-system/models"

	"gorm.io/gorm"
)

// StatsService derives dashboard aggregates and the ranked leaderboard from
// the current player set. Nothing here is cached: every call is a fresh
// full-table scan, which is fine at admin-dashboard scale.
type StatsService struct {
	DB *gorm.DB

	// Fed by the external monitoring pipeline; this service has no real
	// signal for them and only passes the configured values through.
	CleanGamesPercentage float64
	AvgResponseTime      string
}

func NewStatsService(db *gorm.DB, cleanGamesPercentage float64, avgResponseTime string) *StatsService {
	return &StatsService{
		DB:                   db,
		CleanGamesPercentage: cleanGamesPercentage,
		AvgResponseTime:      avgResponseTime,
	}
}

// DashboardStats is the aggregate object behind GET /api/dashboard/stats.
type DashboardStats struct {
	TotalPlayers         int64   `json:"totalPlayers"`
	ActivePlayers        int64   `json:"activePlayers"`
	TotalCoins           int64   `json:"totalCoins"`
	TotalGems            int64   `json:"totalGems"`
	TotalBanned          int64   `json:"totalBanned"`
	TodayDetections      int64   `json:"todayDetections"`
	CleanGamesPercentage float64 `json:"cleanGamesPercentage"`
	AvgResponseTime      string  `json:"avgResponseTime"`
}

func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	stats := DashboardStats{
		CleanGamesPercentage: s.CleanGamesPercentage,
		AvgResponseTime:      s.AvgResponseTime,
	}

	if err := s.DB.Model(&models.Player{}).Count(&stats.TotalPlayers).Error; err != nil {
		return nil, storageErr(err)
	}
	if err := s.DB.Model(&models.Player{}).
		Where("status = ?", models.PlayerStatusActive).
		Count(&stats.ActivePlayers).Error; err != nil {
		return nil, storageErr(err)
	}
	if err := s.DB.Model(&models.Player{}).
		Where("status = ?", models.PlayerStatusBanned).
		Count(&stats.TotalBanned).Error; err != nil {
		return nil, storageErr(err)
	}

	type sums struct {
		Coins int64
		Gems  int64
	}
	var totals sums
	err := s.DB.Model(&models.Player{}).
		Select("COALESCE(SUM(coins),0) AS coins, COALESCE(SUM(gems),0) AS gems").
		Scan(&totals).Error
	if err != nil {
		return nil, storageErr(err)
	}
	stats.TotalCoins = totals.Coins
	stats.TotalGems = totals.Gems

	// Detections whose createdAt falls on the current calendar day, local time.
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	err = s.DB.Model(&models.AntiCheatLog{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&stats.TodayDetections).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return &stats, nil
}

// GetLeaderboard returns the top active players by ranked points. Ties keep
// their prior relative order (older account first, then id) so repeated
// calls over unchanged data yield identical output.
func (s *StatsService) GetLeaderboard(limit int) ([]models.Player, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var players []models.Player
	err := s.DB.Where("status = ?", models.PlayerStatusActive).
		Order("ranked_points DESC, created_at ASC, id ASC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return players, nil
}
