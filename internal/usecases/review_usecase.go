package usecases

import (
	"context"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
)

// ReviewUsecase handles review business logic. Every write pairs the review
// mutation with a recompute of the product's denormalized mean rating inside
// one unit of work, so readers never observe a half-applied review.
type ReviewUsecase struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	uow         repositories.UnitOfWork
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepository,
	uow repositories.UnitOfWork,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		uow:         uow,
	}
}

// Submit creates a review for a product the user has not reviewed yet
func (u *ReviewUsecase) Submit(ctx context.Context, userID uint, input *entities.SubmitReviewInput) (*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	exists, err := u.reviewRepo.ExistsForUserProduct(ctx, userID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.ErrAlreadyExists
	}

	review := &entities.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Create(txCtx, review); err != nil {
			return err
		}
		return u.productRepo.RecomputeRating(txCtx, input.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Get returns one review with its author
func (u *ReviewUsecase) Get(ctx context.Context, reviewID uint) (*entities.Review, error) {
	return u.reviewRepo.GetByID(ctx, reviewID)
}

// ListByProduct lists a product's reviews with their authors
func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.reviewRepo.ListByProduct(ctx, productID)
}

// Delete removes the caller's own review; admins may remove any review
func (u *ReviewUsecase) Delete(ctx context.Context, reviewID, userID uint, isAdmin bool) error {
	var review *entities.Review
	var err error
	if isAdmin {
		review, err = u.reviewRepo.GetByID(ctx, reviewID)
	} else {
		review, err = u.reviewRepo.GetOwned(ctx, reviewID, userID)
	}
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Delete(txCtx, reviewID); err != nil {
			return err
		}
		return u.productRepo.RecomputeRating(txCtx, review.ProductID)
	})
}
