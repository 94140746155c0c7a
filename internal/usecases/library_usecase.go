package usecases

import (
	"context"

	"muza-life.backend/internal/domain/entities"
	"muza-life.backend/internal/domain/repositories"
)

// LibraryUsecase handles the user's saved and bought product collections
type LibraryUsecase struct {
	savedRepo   repositories.SavedProductRepository
	boughtRepo  repositories.BoughtProductRepository
	productRepo repositories.ProductRepository
}

// NewLibraryUsecase creates a new library usecase
func NewLibraryUsecase(
	savedRepo repositories.SavedProductRepository,
	boughtRepo repositories.BoughtProductRepository,
	productRepo repositories.ProductRepository,
) *LibraryUsecase {
	return &LibraryUsecase{
		savedRepo:   savedRepo,
		boughtRepo:  boughtRepo,
		productRepo: productRepo,
	}
}

// SaveProduct puts a product on the user's wishlist; repeats are no-ops
func (u *LibraryUsecase) SaveProduct(ctx context.Context, userID uint, input *entities.SaveProductInput) error {
	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return err
	}
	return u.savedRepo.Save(ctx, userID, input.ProductID)
}

// UnsaveProduct removes a product from the wishlist
func (u *LibraryUsecase) UnsaveProduct(ctx context.Context, userID, productID uint) error {
	return u.savedRepo.Remove(ctx, userID, productID)
}

// ListSaved returns the wishlisted products that still exist in the catalog
func (u *LibraryUsecase) ListSaved(ctx context.Context, userID uint) ([]*entities.Product, error) {
	ids, err := u.savedRepo.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(ids))
	for _, id := range ids {
		product, err := u.productRepo.GetByID(ctx, id)
		if err != nil {
			// deleted products silently fall off the wishlist
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// ListBought returns the products the user owns
func (u *LibraryUsecase) ListBought(ctx context.Context, userID uint) ([]*entities.Product, error) {
	return u.boughtRepo.List(ctx, userID)
}

// GrantProduct hands a product to a user without a purchase (admin path)
func (u *LibraryUsecase) GrantProduct(ctx context.Context, userID uint, input *entities.SaveProductInput) error {
	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return err
	}
	return u.boughtRepo.Grant(ctx, userID, input.ProductID)
}

// RevokeProduct takes a granted product back from a user (admin path)
func (u *LibraryUsecase) RevokeProduct(ctx context.Context, userID, productID uint) error {
	return u.boughtRepo.Revoke(ctx, userID, productID)
}
