package repositories

import (
	"context"
	"errors"
	"fmt"

	"taproom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	base
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{base: base{db: db}}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := r.conn(ctx).Create(user).Error; err != nil {
		return storeError(err, "failed to create user")
	}
	return nil
}

// GetByUsername retrieves a user by their username, or nil when absent.
func (r *GORMUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err, fmt.Sprintf("failed to get user by username %s", username))
	}
	return &user, nil
}

// UpdatePassword stores a new password hash for user.
func (r *GORMUserRepository) UpdatePassword(ctx context.Context, user *models.User) error {
	res := r.conn(ctx).Model(&models.User{}).Where("id = ?", user.ID).Update("password", user.Password)
	if res.Error != nil {
		return storeError(res.Error, "failed to update user password")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found for update", user.ID)
	}
	return nil
}
