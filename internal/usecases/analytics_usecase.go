package usecases

import (
	"context"

	"github.com/volatiletech/null/v8"
	"muza-life.backend/internal/domain/entities"
	"muza-life.backend/internal/domain/repositories"
)

// AnalyticsUsecase handles product view analytics
type AnalyticsUsecase struct {
	viewRepo    repositories.ProductViewRepository
	productRepo repositories.ProductRepository
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(viewRepo repositories.ProductViewRepository, productRepo repositories.ProductRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{viewRepo: viewRepo, productRepo: productRepo}
}

// RecordView records one product page view; userID 0 means anonymous
func (u *AnalyticsUsecase) RecordView(ctx context.Context, userID uint, input *entities.RecordViewInput) error {
	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return err
	}
	view := &entities.ProductView{
		ProductID: input.ProductID,
		UserID:    null.NewUint(userID, userID != 0),
	}
	return u.viewRepo.Record(ctx, view)
}

// ProductStats aggregates a product's view analytics (admin path)
func (u *AnalyticsUsecase) ProductStats(ctx context.Context, productID uint) (*entities.ProductStats, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.viewRepo.Stats(ctx, productID)
}
