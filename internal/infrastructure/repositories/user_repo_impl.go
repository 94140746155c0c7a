package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/infrastructure/models"
)

// UserRepository implements account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new account
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		GoogleID:     user.GoogleID.Ptr(),
		FacebookID:   user.FacebookID.Ptr(),
		AuthProvider: string(user.AuthProvider),
		AvatarURL:    user.AvatarURL.Ptr(),
		IsAdmin:      user.IsAdmin,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets an account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByProviderID finds the account holding the given provider identity,
// falling back to an email match so an existing password account can be
// linked instead of duplicated.
func (r *UserRepository) GetByProviderID(ctx context.Context, provider entities.AuthProvider, providerID, email string) (*entities.User, error) {
	column := "google_id"
	if provider == entities.AuthProviderFacebook {
		column = "facebook_id"
	}

	var m models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where(column+" = ? OR email = ?", providerID, email).
		Order("CASE WHEN " + column + " IS NOT NULL THEN 0 ELSE 1 END").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// LinkProvider attaches a provider identity to an existing account
func (r *UserRepository) LinkProvider(ctx context.Context, userID uint, provider entities.AuthProvider, providerID string) error {
	column := "google_id"
	if provider == entities.AuthProviderFacebook {
		column = "facebook_id"
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{column: providerID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Update updates mutable profile fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":       user.Name,
		"is_admin":   user.IsAdmin,
		"updated_at": time.Now(),
	}
	if user.AvatarURL.Valid {
		updates["avatar_url"] = user.AvatarURL.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an account
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		GoogleID:     null.StringFromPtr(m.GoogleID),
		FacebookID:   null.StringFromPtr(m.FacebookID),
		AuthProvider: entities.AuthProvider(m.AuthProvider),
		AvatarURL:    null.StringFromPtr(m.AvatarURL),
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
