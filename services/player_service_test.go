package services

import (
	"testing"

	"domino-admin-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayerDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	p, err := svc.CreatePlayer(CreatePlayerInput{
		Username:     "newbie",
		Email:        "newbie@example.com",
		RankedPoints: 1200,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 5, p.MinLevelForRanked)
	assert.Equal(t, models.PlayerStatusActive, p.Status)
	assert.Equal(t, TierGold, p.Tier)
}

func TestCreatePlayerDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	_, err := svc.CreatePlayer(CreatePlayerInput{Username: "dup", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.CreatePlayer(CreatePlayerInput{Username: "dup", Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePlayer(CreatePlayerInput{Username: "", Email: "c@example.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePlayerRecomputesTier(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)
	player := seedPlayer(t, db, "climber", 0, 0, 0)
	require.Equal(t, TierBronze, player.Tier)

	points := 2600
	updated, err := svc.UpdatePlayer(player.ID, UpdatePlayerInput{RankedPoints: &points})
	require.NoError(t, err)
	assert.Equal(t, 2600, updated.RankedPoints)
	assert.Equal(t, TierMaster, updated.Tier)

	// Updating unrelated fields leaves points and tier alone.
	level := 12
	updated, err = svc.UpdatePlayer(player.ID, UpdatePlayerInput{Level: &level})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Level)
	assert.Equal(t, 2600, updated.RankedPoints)
	assert.Equal(t, TierMaster, updated.Tier)
}

func TestAdjustRankedPoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)
	player := seedPlayer(t, db, "grinder", 0, 0, 480)

	updated, err := svc.AdjustRankedPoints(player.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 510, updated.RankedPoints)
	assert.Equal(t, TierSilver, updated.Tier)

	// Large negative delta floors at zero and drops back to Bronze.
	updated, err = svc.AdjustRankedPoints(player.ID, -10000)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.RankedPoints)
	assert.Equal(t, TierBronze, updated.Tier)

	_, err = svc.AdjustRankedPoints("no-such-player", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBanUnbanSuspend(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)
	player := seedPlayer(t, db, "cheater", 0, 0, 0)

	banned, err := svc.BanPlayer(player.ID, "afk abuse", 7)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerStatusBanned, banned.Status)

	// Banning twice is a no-op, not an error.
	banned, err = svc.BanPlayer(player.ID, "afk abuse", 7)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerStatusBanned, banned.Status)

	active, err := svc.UnbanPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerStatusActive, active.Status)

	suspended, err := svc.SuspendPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerStatusSuspended, suspended.Status)

	// Unban also lifts a suspension.
	active, err = svc.UnbanPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerStatusActive, active.Status)

	_, err = svc.BanPlayer("no-such-player", "x", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPlayersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	seedPlayer(t, db, "alice", 0, 0, 0)
	bob := seedPlayer(t, db, "bob", 0, 0, 700)
	seedPlayer(t, db, "carol", 0, 0, 3200)
	_, err := svc.BanPlayer(bob.ID, "test", 1)
	require.NoError(t, err)

	players, total, err := svc.ListPlayers(PlayerFilters{Tier: TierSilver})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, players, 1)
	assert.Equal(t, "bob", players[0].Username)

	players, total, err = svc.ListPlayers(PlayerFilters{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, players, 2)

	// Search matches username case-insensitively.
	players, _, err = svc.ListPlayers(PlayerFilters{Search: "CAR"})
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "carol", players[0].Username)

	_, _, err = svc.ListPlayers(PlayerFilters{Tier: "Wood"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetPlayerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	_, err := svc.GetPlayer("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
