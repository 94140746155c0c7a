package usecases

import (
	"context"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
)

// PollUsecase handles poll business logic
type PollUsecase struct {
	pollRepo repositories.PollRepository
	uow      repositories.UnitOfWork
}

// NewPollUsecase creates a new poll usecase
func NewPollUsecase(pollRepo repositories.PollRepository, uow repositories.UnitOfWork) *PollUsecase {
	return &PollUsecase{pollRepo: pollRepo, uow: uow}
}

// Create creates a poll with its options in one transaction
func (u *PollUsecase) Create(ctx context.Context, input *entities.CreatePollInput) (*entities.Poll, error) {
	seen := make(map[string]struct{}, len(input.Options))
	for _, opt := range input.Options {
		if _, dup := seen[opt]; dup {
			return nil, domainerrors.ErrInvalidInput
		}
		seen[opt] = struct{}{}
	}

	var poll *entities.Poll
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		poll, err = u.pollRepo.Create(txCtx, input.Question, input.Options)
		return err
	})
	if err != nil {
		return nil, err
	}
	return poll, nil
}

// Get returns one poll with counts and the caller's voted flag
func (u *PollUsecase) Get(ctx context.Context, pollID, userID uint) (*entities.Poll, error) {
	return u.pollRepo.GetByID(ctx, pollID, userID)
}

// ListActive lists open polls for the caller
func (u *PollUsecase) ListActive(ctx context.Context, userID uint) ([]*entities.Poll, error) {
	return u.pollRepo.ListActive(ctx, userID)
}

// Vote casts the caller's single ballot in a poll. The option must belong to
// the poll, the poll must be open, and the storage constraint rejects a
// second ballot even under concurrent requests.
func (u *PollUsecase) Vote(ctx context.Context, userID, pollID uint, input *entities.VoteInput) (*entities.Poll, error) {
	poll, err := u.pollRepo.GetByID(ctx, pollID, userID)
	if err != nil {
		return nil, err
	}
	// a closed poll is gone as a voting target, not an access violation
	if !poll.IsActive {
		return nil, domainerrors.ErrNotFound
	}

	belongs, err := u.pollRepo.OptionBelongsToPoll(ctx, input.OptionID, pollID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, domainerrors.ErrInvalidInput
	}

	if err := u.pollRepo.CreateVote(ctx, userID, pollID, input.OptionID); err != nil {
		return nil, err
	}
	return u.pollRepo.GetByID(ctx, pollID, userID)
}

// Results returns per-option tallies with percentages
func (u *PollUsecase) Results(ctx context.Context, pollID uint) ([]*entities.PollOptionResult, error) {
	return u.pollRepo.Results(ctx, pollID)
}

// SetActive opens or closes a poll
func (u *PollUsecase) SetActive(ctx context.Context, pollID uint, active bool) (*entities.Poll, error) {
	return u.pollRepo.SetActive(ctx, pollID, active)
}
