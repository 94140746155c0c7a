package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/infrastructure/models"
)

// SavedProductRepository implements wishlist data operations
type SavedProductRepository struct {
	db *gorm.DB
}

// NewSavedProductRepository creates a new saved-product repository
func NewSavedProductRepository(db *gorm.DB) *SavedProductRepository {
	return &SavedProductRepository{db: db}
}

// Save upserts the wishlist entry; saving twice is not an error
func (r *SavedProductRepository) Save(ctx context.Context, userID, productID uint) error {
	m := &models.SavedProduct{UserID: userID, ProductID: productID, SavedAt: time.Now()}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// Remove deletes the wishlist entry
func (r *SavedProductRepository) Remove(ctx context.Context, userID, productID uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Delete(&models.SavedProduct{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListIDs lists the user's saved product IDs, most recent first
func (r *SavedProductRepository) ListIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.SavedProduct{}).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// BoughtProductRepository implements owned-product data operations
type BoughtProductRepository struct {
	db *gorm.DB
}

// NewBoughtProductRepository creates a new bought-product repository
func NewBoughtProductRepository(db *gorm.DB) *BoughtProductRepository {
	return &BoughtProductRepository{db: db}
}

// Grant upserts ownership; granting an already-owned product is a no-op so
// webhook replays stay idempotent
func (r *BoughtProductRepository) Grant(ctx context.Context, userID, productID uint) error {
	m := &models.BoughtProduct{UserID: userID, ProductID: productID, BoughtAt: time.Now()}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// Revoke removes ownership
func (r *BoughtProductRepository) Revoke(ctx context.Context, userID, productID uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Delete(&models.BoughtProduct{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists the user's owned products, most recent purchase first
func (r *BoughtProductRepository) List(ctx context.Context, userID uint) ([]*entities.Product, error) {
	var productModels []models.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN bought_products bp ON bp.product_id = products.id").
		Where("bp.user_id = ?", userID).
		Order("bp.bought_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products, nil
}

// PersonalOrderRepository implements personal order data operations
type PersonalOrderRepository struct {
	db *gorm.DB
}

// NewPersonalOrderRepository creates a new personal order repository
func NewPersonalOrderRepository(db *gorm.DB) *PersonalOrderRepository {
	return &PersonalOrderRepository{db: db}
}

// Create places a personal order
func (r *PersonalOrderRepository) Create(ctx context.Context, order *entities.PersonalOrder) error {
	m := &models.PersonalOrder{
		UserID:        order.UserID,
		Title:         order.Title,
		Description:   order.Description,
		Status:        string(order.Status),
		Price:         order.Price,
		TypeID:        order.TypeID,
		AgeCategoryID: order.AgeCategoryID,
		Deadline:      order.Deadline,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a personal order by ID
func (r *PersonalOrderRepository) GetByID(ctx context.Context, id uint) (*entities.PersonalOrder, error) {
	var m models.PersonalOrder
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return personalOrderToEntity(&m), nil
}

// ListByUser lists one user's personal orders, newest first
func (r *PersonalOrderRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.PersonalOrder, error) {
	var orderModels []models.PersonalOrder
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	return personalOrdersToEntities(orderModels), nil
}

// ListAll lists every personal order, newest first
func (r *PersonalOrderRepository) ListAll(ctx context.Context) ([]*entities.PersonalOrder, error) {
	var orderModels []models.PersonalOrder
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	return personalOrdersToEntities(orderModels), nil
}

// UpdateStatus moves an order to a new lifecycle status
func (r *PersonalOrderRepository) UpdateStatus(ctx context.Context, id uint, status entities.OrderStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PersonalOrder{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ExpireAwaitingPayment cancels orders still waiting for payment past the
// cutoff and returns how many were touched
func (r *PersonalOrderRepository) ExpireAwaitingPayment(ctx context.Context, cutoff time.Time) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PersonalOrder{}).
		Where("status = ? AND deadline < ?", string(entities.OrderStatusAwaitingPayment), cutoff).
		Update("status", string(entities.OrderStatusCancelledBySystem))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func personalOrdersToEntities(orderModels []models.PersonalOrder) []*entities.PersonalOrder {
	orders := make([]*entities.PersonalOrder, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, personalOrderToEntity(&orderModels[i]))
	}
	return orders
}

func personalOrderToEntity(m *models.PersonalOrder) *entities.PersonalOrder {
	return &entities.PersonalOrder{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		Status:        entities.OrderStatus(m.Status),
		Price:         m.Price,
		TypeID:        m.TypeID,
		AgeCategoryID: m.AgeCategoryID,
		Deadline:      m.Deadline,
		CreatedAt:     m.CreatedAt,
	}
}
