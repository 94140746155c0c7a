package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByProviderID(ctx context.Context, provider entities.AuthProvider, providerID, email string) (*entities.User, error)
	LinkProvider(ctx context.Context, userID uint, provider entities.AuthProvider, providerID string) error
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint) error
}
