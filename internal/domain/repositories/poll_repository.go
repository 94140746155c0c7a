package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// PollRepository defines poll data operations. Vote uniqueness per
// (user, poll) is backed by a storage constraint; CreateVote surfaces a
// violation as ErrAlreadyExists so racing requests cannot double-vote.
type PollRepository interface {
	Create(ctx context.Context, question string, options []string) (*entities.Poll, error)
	GetByID(ctx context.Context, pollID uint, userID uint) (*entities.Poll, error)
	ListActive(ctx context.Context, userID uint) ([]*entities.Poll, error)
	OptionBelongsToPoll(ctx context.Context, optionID, pollID uint) (bool, error)
	HasVoted(ctx context.Context, userID, pollID uint) (bool, error)
	CreateVote(ctx context.Context, userID, pollID, optionID uint) error
	Results(ctx context.Context, pollID uint) ([]*entities.PollOptionResult, error)
	SetActive(ctx context.Context, pollID uint, active bool) (*entities.Poll, error)
}
