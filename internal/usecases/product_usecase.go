package usecases

import (
	"context"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
)

// ProductUsecase handles catalog business logic
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	faqRepo     repositories.FAQRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, faqRepo repositories.FAQRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, faqRepo: faqRepo}
}

// Create adds a product to the catalog
func (u *ProductUsecase) Create(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		Title:        input.Title,
		Description:  input.Description,
		MainImageURL: input.MainImageURL,
		Price:        input.Price,
		TypeID:       input.TypeID,
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns one product; hidden products are only visible to admins
func (u *ProductUsecase) Get(ctx context.Context, id uint, isAdmin bool) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Hidden && !isAdmin {
		return nil, domainerrors.ErrNotFound
	}
	return product, nil
}

// List lists catalog products; only admins may include hidden ones
func (u *ProductUsecase) List(ctx context.Context, filter entities.ProductFilter, isAdmin bool) ([]*entities.Product, error) {
	if !isAdmin {
		filter.IncludeHidden = false
	}
	return u.productRepo.List(ctx, filter)
}

// Patch applies a partial update to a product
func (u *ProductUsecase) Patch(ctx context.Context, id uint, patch *entities.ProductPatch) (*entities.Product, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := u.productRepo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	return u.productRepo.GetByID(ctx, id)
}

// Delete removes a product from the catalog
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	return u.productRepo.Delete(ctx, id)
}

// ListFAQs lists storefront FAQs
func (u *ProductUsecase) ListFAQs(ctx context.Context) ([]*entities.FAQ, error) {
	return u.faqRepo.List(ctx)
}

// GetFAQ returns one FAQ entry
func (u *ProductUsecase) GetFAQ(ctx context.Context, id uint) (*entities.FAQ, error) {
	return u.faqRepo.GetByID(ctx, id)
}
