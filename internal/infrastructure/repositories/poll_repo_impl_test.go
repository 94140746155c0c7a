package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	domainerrors "muza-life.backend/internal/domain/errors"
)

func TestPollRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createPollTables(t, db)
	repo := NewPollRepository(db)
	ctx := context.Background()

	poll, err := repo.Create(ctx, "Favorite genre?", []string{"Lullaby", "Folk", "Jazz"})
	require.NoError(t, err)
	require.NotZero(t, poll.ID)
	require.Len(t, poll.Options, 3)
	require.True(t, poll.IsActive)

	got, err := repo.GetByID(ctx, poll.ID, 0)
	require.NoError(t, err)
	require.Equal(t, "Favorite genre?", got.Question)
	require.Len(t, got.Options, 3)
	require.Zero(t, got.TotalVotes)

	_, err = repo.GetByID(ctx, 9999, 0)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPollRepository_VoteOncePerPoll(t *testing.T) {
	db := newTestDB(t)
	createPollTables(t, db)
	repo := NewPollRepository(db)
	ctx := context.Background()

	poll, err := repo.Create(ctx, "Best cover?", []string{"A", "B"})
	require.NoError(t, err)
	optA, optB := poll.Options[0].ID, poll.Options[1].ID

	require.NoError(t, repo.CreateVote(ctx, 1, poll.ID, optA))

	// same user, same poll: the constraint rejects even a different option
	require.ErrorIs(t, repo.CreateVote(ctx, 1, poll.ID, optB), domainerrors.ErrAlreadyExists)
	require.ErrorIs(t, repo.CreateVote(ctx, 1, poll.ID, optA), domainerrors.ErrAlreadyExists)

	require.NoError(t, repo.CreateVote(ctx, 2, poll.ID, optB))

	voted, err := repo.HasVoted(ctx, 1, poll.ID)
	require.NoError(t, err)
	require.True(t, voted)

	got, err := repo.GetByID(ctx, poll.ID, 1)
	require.NoError(t, err)
	require.True(t, got.UserHasVoted)
	require.EqualValues(t, 2, got.TotalVotes)
	require.EqualValues(t, 1, got.Options[0].VoteCount)
	require.EqualValues(t, 1, got.Options[1].VoteCount)
}

func TestPollRepository_OptionBelongsToPoll(t *testing.T) {
	db := newTestDB(t)
	createPollTables(t, db)
	repo := NewPollRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, "One?", []string{"A", "B"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Two?", []string{"C", "D"})
	require.NoError(t, err)

	ok, err := repo.OptionBelongsToPoll(ctx, first.Options[0].ID, first.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.OptionBelongsToPoll(ctx, second.Options[0].ID, first.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPollRepository_Results(t *testing.T) {
	db := newTestDB(t)
	createPollTables(t, db)
	repo := NewPollRepository(db)
	ctx := context.Background()

	poll, err := repo.Create(ctx, "Pick one", []string{"A", "B"})
	require.NoError(t, err)

	require.NoError(t, repo.CreateVote(ctx, 1, poll.ID, poll.Options[0].ID))
	require.NoError(t, repo.CreateVote(ctx, 2, poll.ID, poll.Options[0].ID))
	require.NoError(t, repo.CreateVote(ctx, 3, poll.ID, poll.Options[1].ID))

	results, err := repo.Results(ctx, poll.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.EqualValues(t, 2, results[0].VoteCount)
	require.InDelta(t, 66.666, results[0].Percentage, 0.01)
	require.InDelta(t, 33.333, results[1].Percentage, 0.01)

	_, err = repo.Results(ctx, 9999)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPollRepository_SetActiveAndListActive(t *testing.T) {
	db := newTestDB(t)
	createPollTables(t, db)
	repo := NewPollRepository(db)
	ctx := context.Background()

	poll, err := repo.Create(ctx, "Open?", []string{"Yes", "No"})
	require.NoError(t, err)

	active, err := repo.ListActive(ctx, 0)
	require.NoError(t, err)
	require.Len(t, active, 1)

	closed, err := repo.SetActive(ctx, poll.ID, false)
	require.NoError(t, err)
	require.False(t, closed.IsActive)

	active, err = repo.ListActive(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, active)

	_, err = repo.SetActive(ctx, 9999, true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
