package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// SavedProductRepository defines wishlist data operations
type SavedProductRepository interface {
	// Save is an upsert; saving twice is not an error.
	Save(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	ListIDs(ctx context.Context, userID uint) ([]uint, error)
}

// BoughtProductRepository defines owned-product data operations
type BoughtProductRepository interface {
	// Grant is an upsert; granting an already-owned product is a no-op,
	// which keeps webhook fulfillment idempotent.
	Grant(ctx context.Context, userID, productID uint) error
	Revoke(ctx context.Context, userID, productID uint) error
	List(ctx context.Context, userID uint) ([]*entities.Product, error)
}

// PersonalOrderRepository defines personal order data operations
type PersonalOrderRepository interface {
	Create(ctx context.Context, order *entities.PersonalOrder) error
	GetByID(ctx context.Context, id uint) (*entities.PersonalOrder, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.PersonalOrder, error)
	ListAll(ctx context.Context) ([]*entities.PersonalOrder, error)
	UpdateStatus(ctx context.Context, id uint, status entities.OrderStatus) error
}

// ProductViewRepository defines analytics data operations
type ProductViewRepository interface {
	Record(ctx context.Context, view *entities.ProductView) error
	Stats(ctx context.Context, productID uint) (*entities.ProductStats, error)
}
