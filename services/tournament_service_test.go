package services

import (
	"testing"
	"time"

	"domino-admin-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTournamentFixture(t *testing.T) (*TournamentService, *CurrencyService) {
	t.Helper()
	db := newTestDB(t)
	currency := NewCurrencyService(db, false)
	return NewTournamentService(db, currency), currency
}

func basicTournament(fee, maxParticipants int) CreateTournamentInput {
	return CreateTournamentInput{
		Name:            "Friday Blitz",
		Type:            "elimination",
		EntryFee:        fee,
		MaxParticipants: maxParticipants,
		StartTime:       time.Now().Add(time.Hour),
		Duration:        90,
	}
}

func TestCreateTournamentDefaults(t *testing.T) {
	svc, _ := newTournamentFixture(t)

	tr, err := svc.CreateTournament(basicTournament(100, 8))
	require.NoError(t, err)
	assert.Equal(t, models.TournamentScheduled, tr.Status)
	assert.Equal(t, models.CurrencyCoins, tr.EntryFeeCurrency)
	assert.Zero(t, tr.CurrentParticipants)
	assert.JSONEq(t, "{}", string(tr.PrizePool))

	_, err = svc.CreateTournament(CreateTournamentInput{Name: "x", Type: "y"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTournamentLifecycle(t *testing.T) {
	svc, _ := newTournamentFixture(t)
	tr, err := svc.CreateTournament(basicTournament(0, 8))
	require.NoError(t, err)

	// scheduled cannot jump straight to completed.
	_, err = svc.UpdateStatus(tr.ID, models.TournamentCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	active, err := svc.UpdateStatus(tr.ID, models.TournamentActive)
	require.NoError(t, err)
	assert.Equal(t, models.TournamentActive, active.Status)

	done, err := svc.UpdateStatus(tr.ID, models.TournamentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TournamentCompleted, done.Status)
	assert.NotNil(t, done.EndTime)

	// completed is terminal.
	_, err = svc.UpdateStatus(tr.ID, models.TournamentCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestJoinTournamentDebitsEntryFee(t *testing.T) {
	svc, currency := newTournamentFixture(t)
	player := seedPlayer(t, currency.DB, "entrant", 500, 0, 0)

	tr, err := svc.CreateTournament(basicTournament(150, 8))
	require.NoError(t, err)

	joined, err := svc.JoinTournament(tr.ID, player.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, joined.CurrentParticipants)

	got, err := NewPlayerService(currency.DB).GetPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, 350, got.Coins)

	// The debit is a regular ledger entry.
	entries, _, err := currency.ListTransactions(TransactionFilters{PlayerID: player.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, -150, entries[0].Amount)
}

func TestJoinTournamentInsufficientBalance(t *testing.T) {
	svc, currency := newTournamentFixture(t)
	player := seedPlayer(t, currency.DB, "broke", 100, 0, 0)

	tr, err := svc.CreateTournament(basicTournament(150, 8))
	require.NoError(t, err)

	_, err = svc.JoinTournament(tr.ID, player.ID, "admin-1")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Failed join rolls back completely: no seat taken, no ledger entry.
	got, err := svc.GetTournament(tr.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CurrentParticipants)

	_, total, err := currency.ListTransactions(TransactionFilters{PlayerID: player.ID})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestJoinTournamentCapacity(t *testing.T) {
	svc, currency := newTournamentFixture(t)
	a := seedPlayer(t, currency.DB, "a", 0, 0, 0)
	b := seedPlayer(t, currency.DB, "b", 0, 0, 0)
	c := seedPlayer(t, currency.DB, "c", 0, 0, 0)

	tr, err := svc.CreateTournament(basicTournament(0, 2))
	require.NoError(t, err)

	_, err = svc.JoinTournament(tr.ID, a.ID, "admin-1")
	require.NoError(t, err)
	_, err = svc.JoinTournament(tr.ID, b.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.JoinTournament(tr.ID, c.ID, "admin-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJoinTournamentClosedStates(t *testing.T) {
	svc, currency := newTournamentFixture(t)
	player := seedPlayer(t, currency.DB, "late", 0, 0, 0)

	tr, err := svc.CreateTournament(basicTournament(0, 8))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(tr.ID, models.TournamentCancelled)
	require.NoError(t, err)

	_, err = svc.JoinTournament(tr.ID, player.ID, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Free join still requires a real player.
	tr2, err := svc.CreateTournament(basicTournament(0, 8))
	require.NoError(t, err)
	_, err = svc.JoinTournament(tr2.ID, "no-such-player", "admin-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTournamentGuardsCapacity(t *testing.T) {
	svc, currency := newTournamentFixture(t)
	a := seedPlayer(t, currency.DB, "a", 0, 0, 0)
	b := seedPlayer(t, currency.DB, "b", 0, 0, 0)

	tr, err := svc.CreateTournament(basicTournament(0, 4))
	require.NoError(t, err)
	_, err = svc.JoinTournament(tr.ID, a.ID, "admin-1")
	require.NoError(t, err)
	_, err = svc.JoinTournament(tr.ID, b.ID, "admin-1")
	require.NoError(t, err)

	one := 1
	_, err = svc.UpdateTournament(tr.ID, UpdateTournamentInput{MaxParticipants: &one})
	assert.ErrorIs(t, err, ErrValidation)

	three := 3
	winner := "alice"
	updated, err := svc.UpdateTournament(tr.ID, UpdateTournamentInput{MaxParticipants: &three, Winner: &winner})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MaxParticipants)
	assert.Equal(t, "alice", updated.Winner)
}

func TestDeleteTournament(t *testing.T) {
	svc, _ := newTournamentFixture(t)
	tr, err := svc.CreateTournament(basicTournament(0, 8))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTournament(tr.ID))
	assert.ErrorIs(t, svc.DeleteTournament(tr.ID), ErrNotFound)

	_, err = svc.GetTournament(tr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
