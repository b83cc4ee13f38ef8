package services

import (
	"testing"

	"domino-admin-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogDefaultsToUnderReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	player := seedPlayer(t, db, "suspect", 0, 0, 0)

	entry, err := svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: models.DetectionAFK,
		RiskLevel:     models.RiskLow,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AntiCheatUnderReview, entry.Status)
	assert.Nil(t, entry.Action)
}

func TestCreateLogValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	player := seedPlayer(t, db, "suspect", 0, 0, 0)

	_, err := svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: "aimbot",
		RiskLevel:     models.RiskLow,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: models.DetectionAFK,
		RiskLevel:     "extreme",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLog(CreateLogInput{
		PlayerID:      "no-such-player",
		DetectionType: models.DetectionAFK,
		RiskLevel:     models.RiskLow,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Manual reviews may arrive already closed, action included.
func TestCreateLogManualPreResolved(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	player := seedPlayer(t, db, "suspect", 0, 0, 0)

	action := models.ActionWarning
	entry, err := svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: models.DetectionManualReview,
		RiskLevel:     models.RiskMedium,
		Status:        models.AntiCheatResolved,
		Action:        &action,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AntiCheatResolved, entry.Status)
	require.NotNil(t, entry.Action)
	assert.Equal(t, models.ActionWarning, *entry.Action)
}

func TestReviewLogTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	player := seedPlayer(t, db, "suspect", 0, 0, 0)

	entry, err := svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: models.DetectionSuspiciousPattern,
		RiskLevel:     models.RiskHigh,
	})
	require.NoError(t, err)

	action := models.ActionBanned
	reviewed, err := svc.ReviewLog(entry.ID, ReviewLogInput{
		Status: models.AntiCheatResolved,
		Action: &action,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AntiCheatResolved, reviewed.Status)
	require.NotNil(t, reviewed.Action)
	assert.Equal(t, models.ActionBanned, *reviewed.Action)

	// resolved and ignored are terminal.
	_, err = svc.ReviewLog(entry.ID, ReviewLogInput{Status: models.AntiCheatIgnored})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// under_review is not a valid review target.
	other, err := svc.CreateLog(CreateLogInput{
		PlayerID:      player.ID,
		DetectionType: models.DetectionTeamAbuse,
		RiskLevel:     models.RiskMedium,
	})
	require.NoError(t, err)
	_, err = svc.ReviewLog(other.ID, ReviewLogInput{Status: models.AntiCheatUnderReview})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ReviewLog("no-such-log", ReviewLogInput{Status: models.AntiCheatIgnored})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLogsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	a := seedPlayer(t, db, "a", 0, 0, 0)
	b := seedPlayer(t, db, "b", 0, 0, 0)

	_, err := svc.CreateLog(CreateLogInput{PlayerID: a.ID, DetectionType: models.DetectionAFK, RiskLevel: models.RiskLow})
	require.NoError(t, err)
	_, err = svc.CreateLog(CreateLogInput{PlayerID: a.ID, DetectionType: models.DetectionTeamAbuse, RiskLevel: models.RiskHigh})
	require.NoError(t, err)
	_, err = svc.CreateLog(CreateLogInput{PlayerID: b.ID, DetectionType: models.DetectionAFK, RiskLevel: models.RiskMedium})
	require.NoError(t, err)

	_, total, err := svc.ListLogs(AntiCheatFilters{PlayerID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	items, total, err := svc.ListLogs(AntiCheatFilters{DetectionType: "afk", RiskLevel: "medium"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].PlayerID)

	_, total, err = svc.ListLogs(AntiCheatFilters{Status: "under_review"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
