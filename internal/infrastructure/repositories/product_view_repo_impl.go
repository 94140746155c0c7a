package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	"muza-life.backend/internal/infrastructure/models"
)

// ProductViewRepository implements analytics data operations
type ProductViewRepository struct {
	db *gorm.DB
}

// NewProductViewRepository creates a new product view repository
func NewProductViewRepository(db *gorm.DB) *ProductViewRepository {
	return &ProductViewRepository{db: db}
}

// Record inserts one page view
func (r *ProductViewRepository) Record(ctx context.Context, view *entities.ProductView) error {
	m := &models.ProductView{
		ProductID: view.ProductID,
		UserID:    view.UserID.Ptr(),
		ViewedAt:  view.ViewedAt,
	}
	if m.ViewedAt.IsZero() {
		m.ViewedAt = time.Now()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	view.ID = m.ID
	view.ViewedAt = m.ViewedAt
	return nil
}

// Stats aggregates a product's view analytics over the last 30 days
func (r *ProductViewRepository) Stats(ctx context.Context, productID uint) (*entities.ProductStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	since := time.Now().AddDate(0, 0, -30)

	stats := &entities.ProductStats{ProductID: productID}

	err := db.Model(&models.ProductView{}).
		Where("product_id = ?", productID).
		Count(&stats.TotalViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.ProductView{}).
		Where("product_id = ? AND user_id IS NOT NULL", productID).
		Distinct("user_id").
		Count(&stats.UniqueViewers).Error
	if err != nil {
		return nil, err
	}

	type dayRow struct {
		Day   string
		Count int64
	}
	var rows []dayRow
	err = db.Model(&models.ProductView{}).
		Select("DATE(viewed_at) as day, COUNT(*) as count").
		Where("product_id = ? AND viewed_at >= ?", productID, since).
		Group("DATE(viewed_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ViewsByDay = append(stats.ViewsByDay, entities.DayViewCount{Day: row.Day, Count: row.Count})
	}
	return stats, nil
}
