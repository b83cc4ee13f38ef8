package services

import (
	"testing"
	"time"

	"domino-admin-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRoomDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	room, err := svc.CreateGameRoom(GameRoomInput{Name: "Beginner Hall", Type: "casual"})
	require.NoError(t, err)
	assert.Equal(t, 1, room.MinLevel)
	assert.Equal(t, 2, room.MaxPlayers)
	assert.Equal(t, models.CurrencyCoins, room.EntryFeeCurrency)
	assert.True(t, room.IsActive)

	_, err = svc.CreateGameRoom(GameRoomInput{Name: "", Type: "casual"})
	assert.ErrorIs(t, err, ErrValidation)

	off := false
	updated, err := svc.UpdateGameRoom(room.ID, GameRoomInput{MinLevel: 10, IsActive: &off})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.MinLevel)
	assert.False(t, updated.IsActive)

	require.NoError(t, svc.DeleteGameRoom(room.ID))
	assert.ErrorIs(t, svc.DeleteGameRoom(room.ID), ErrNotFound)
}

func TestNewsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	item, err := svc.CreateNews(NewsInput{Title: "Season 2 Launch!", Content: "It begins."})
	require.NoError(t, err)
	assert.Equal(t, "season-2-launch", item.Slug)
	assert.True(t, item.IsActive)

	// Changing the title regenerates the slug.
	updated, err := svc.UpdateNews(item.ID, NewsInput{Title: "Season 2 Delayed"})
	require.NoError(t, err)
	assert.Equal(t, "season-2-delayed", updated.Slug)
	assert.Equal(t, "It begins.", updated.Content)

	_, err = svc.CreateNews(NewsInput{Title: "no body"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestXpBoosterLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)
	player := seedPlayer(t, db, "boosted", 0, 0, 0)

	booster, err := svc.CreateXpBooster(XpBoosterInput{PlayerID: player.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, booster.Multiplier)
	assert.Equal(t, 7, booster.Duration)
	assert.Equal(t, 10000, booster.Price)
	assert.True(t, booster.IsActive)
	require.NotNil(t, booster.ExpiresAt)

	wantExpiry := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, wantExpiry, *booster.ExpiresAt, time.Minute)

	deactivated, err := svc.DeactivateXpBooster(booster.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	// Deactivating again is a no-op.
	deactivated, err = svc.DeactivateXpBooster(booster.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, err = svc.CreateXpBooster(XpBoosterInput{PlayerID: "no-such-player"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPairingServices(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	ps, err := svc.CreatePairingService(PairingServiceInput{
		ServiceName: "Jakarta Domino Club",
		Description: "Local pairing partner",
	})
	require.NoError(t, err)
	assert.False(t, ps.IsVerified)

	verified := true
	updated, err := svc.UpdatePairingService(ps.ID, PairingServiceInput{IsVerified: &verified})
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)

	_, err = svc.CreatePairingService(PairingServiceInput{})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.DeletePairingService(ps.ID))
	assert.ErrorIs(t, svc.DeletePairingService(ps.ID), ErrNotFound)
}
