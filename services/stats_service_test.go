package services

import (
	"testing"

	"domino-admin-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db, 98.5, "45ms")

	seedPlayer(t, db, "alice", 100, 5, 0)
	bob := seedPlayer(t, db, "bob", 200, 10, 0)
	seedPlayer(t, db, "carol", 50, 0, 0)

	players := NewPlayerService(db)
	_, err := players.BanPlayer(bob.ID, "test", 1)
	require.NoError(t, err)

	moderation := NewModerationService(db)
	_, err = moderation.CreateLog(CreateLogInput{
		PlayerID:      bob.ID,
		DetectionType: models.DetectionAFK,
		RiskLevel:     models.RiskLow,
	})
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPlayers)
	assert.Equal(t, int64(2), stats.ActivePlayers)
	assert.Equal(t, int64(1), stats.TotalBanned)
	assert.Equal(t, int64(350), stats.TotalCoins)
	assert.Equal(t, int64(15), stats.TotalGems)
	assert.Equal(t, int64(1), stats.TodayDetections)
	assert.Equal(t, 98.5, stats.CleanGamesPercentage)
	assert.Equal(t, "45ms", stats.AvgResponseTime)
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db, 0, "")

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPlayers)
	assert.Zero(t, stats.TotalCoins)
	assert.Zero(t, stats.TotalGems)
	assert.Zero(t, stats.TodayDetections)
}

func TestGetLeaderboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db, 0, "")

	seedPlayer(t, db, "low", 0, 0, 100)
	banned := seedPlayer(t, db, "banned", 0, 0, 5000)
	seedPlayer(t, db, "top", 0, 0, 3000)
	seedPlayer(t, db, "mid", 0, 0, 1500)

	_, err := NewPlayerService(db).BanPlayer(banned.ID, "test", 1)
	require.NoError(t, err)

	board, err := svc.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "top", board[0].Username)
	assert.Equal(t, "mid", board[1].Username)
	assert.Equal(t, "low", board[2].Username)

	// Ties rank the older account first, so repeated calls are stable.
	seedPlayer(t, db, "newcomer", 0, 0, 1500)
	board, err = svc.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, board, 4)
	assert.Equal(t, "mid", board[1].Username)
	assert.Equal(t, "newcomer", board[2].Username)

	// Limit is clamped and applied.
	board, err = svc.GetLeaderboard(2)
	require.NoError(t, err)
	assert.Len(t, board, 2)
}
