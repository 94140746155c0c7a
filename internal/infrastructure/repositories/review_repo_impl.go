package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts the review row and its product join record. Callers run it
// inside a unit of work together with the rating recompute.
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Review{
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}
	if err := db.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	if err := db.Create(&models.ProductReview{ProductID: review.ProductID, ReviewID: m.ID}).Error; err != nil {
		return err
	}
	review.ID = m.ID
	review.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*entities.Review, error) {
	var m models.Review
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// GetOwned returns the review only when it belongs to userID
func (r *ReviewRepository) GetOwned(ctx context.Context, id, userID uint) (*entities.Review, error) {
	var m models.Review
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// ExistsForUserProduct reports whether the user already reviewed the product
func (r *ReviewRepository) ExistsForUserProduct(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByProduct lists a product's reviews joined with their authors,
// newest first
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var reviewModels []models.Review
	err := db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}
	if len(reviewModels) == 0 {
		return []*entities.Review{}, nil
	}

	userIDs := make([]uint, 0, len(reviewModels))
	for i := range reviewModels {
		userIDs = append(userIDs, reviewModels[i].UserID)
	}
	var userModels []models.User
	if err := db.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}
	usersByID := make(map[uint]*models.User, len(userModels))
	for i := range userModels {
		usersByID[userModels[i].ID] = &userModels[i]
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		e := reviewToEntity(&reviewModels[i])
		if u, ok := usersByID[e.UserID]; ok {
			e.UserName = u.Name
			e.UserAvatar = null.StringFromPtr(u.AvatarURL)
		}
		reviews = append(reviews, e)
	}
	return reviews, nil
}

// Delete removes a review and its product join record
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return db.Delete(&models.ProductReview{}, "review_id = ?", id).Error
}

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}
