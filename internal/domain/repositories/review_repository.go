package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// ReviewRepository defines review data operations
type ReviewRepository interface {
	// Create inserts the review row and its product/user join record.
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id uint) (*entities.Review, error)
	// GetOwned returns the review only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID uint) (*entities.Review, error)
	ExistsForUserProduct(ctx context.Context, userID, productID uint) (bool, error)
	ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error)
	Delete(ctx context.Context, id uint) error
}
