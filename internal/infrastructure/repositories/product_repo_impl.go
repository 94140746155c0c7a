package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/infrastructure/models"
)

// ProductRepository implements catalog data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		Title:        product.Title,
		Description:  product.Description,
		MainImageURL: product.MainImageURL,
		Price:        product.Price,
		Rating:       product.Rating,
		TypeID:       product.TypeID,
		Hidden:       product.Hidden,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// List lists products matching the filter
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Order("created_at DESC")

	if !filter.IncludeHidden {
		query = query.Where("hidden = ?", false)
	}
	if filter.TypeID != nil {
		query = query.Where("type_id = ?", *filter.TypeID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", term, term)
	}

	var productModels []models.Product
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products, nil
}

// Patch applies a partial update. Only whitelisted columns are touched; the
// column set is fixed at compile time.
func (r *ProductRepository) Patch(ctx context.Context, id uint, patch *entities.ProductPatch) error {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.MainImageURL != nil {
		updates["main_image_url"] = *patch.MainImageURL
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.TypeID != nil {
		updates["type_id"] = *patch.TypeID
	}
	if patch.Hidden != nil {
		updates["hidden"] = *patch.Hidden
	}
	if len(updates) == 0 {
		return domainerrors.ErrInvalidInput
	}
	updates["updated_at"] = time.Now()

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// RecomputeRating refreshes the denormalized mean rating from stored reviews
func (r *ProductRepository) RecomputeRating(ctx context.Context, productID uint) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var avg float64
	err := db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}

	result := db.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{"rating": avg, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		MainImageURL: m.MainImageURL,
		Price:        m.Price,
		Rating:       m.Rating,
		TypeID:       m.TypeID,
		Hidden:       m.Hidden,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FAQRepository implements FAQ read operations
type FAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// List lists all FAQs
func (r *FAQRepository) List(ctx context.Context) ([]*entities.FAQ, error) {
	var faqModels []models.FAQ
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("id ASC").Find(&faqModels).Error; err != nil {
		return nil, err
	}
	faqs := make([]*entities.FAQ, 0, len(faqModels))
	for i := range faqModels {
		faqs = append(faqs, &entities.FAQ{
			ID:       faqModels[i].ID,
			Question: faqModels[i].Question,
			Answer:   faqModels[i].Answer,
		})
	}
	return faqs, nil
}

// GetByID gets one FAQ by ID
func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*entities.FAQ, error) {
	var m models.FAQ
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.FAQ{ID: m.ID, Question: m.Question, Answer: m.Answer}, nil
}
