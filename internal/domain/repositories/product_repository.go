package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// ProductRepository defines catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uint) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)
	Patch(ctx context.Context, id uint, patch *entities.ProductPatch) error
	Delete(ctx context.Context, id uint) error
	// RecomputeRating refreshes the denormalized mean rating from the
	// currently stored reviews, 0 when none remain.
	RecomputeRating(ctx context.Context, productID uint) error
}

// FAQRepository defines FAQ read operations
type FAQRepository interface {
	List(ctx context.Context) ([]*entities.FAQ, error)
	GetByID(ctx context.Context, id uint) (*entities.FAQ, error)
}
