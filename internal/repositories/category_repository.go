package repositories

import (
	"context"
	"errors"
	"fmt"

	"taproom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	AddBeer(ctx context.Context, categoryID, beerID uuid.UUID) error
	RemoveBeer(ctx context.Context, categoryID, beerID uuid.UUID) error
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	base
}

func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{base: base{db: db}}
}

func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if err := r.conn(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return storeError(err, "failed to create category")
	}
	return nil
}

// GetByID loads a category with its beers, or nil when it does not exist.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.conn(ctx).
		Preload("Beers", func(db *gorm.DB) *gorm.DB { return db.Order("beer_name asc") }).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err, fmt.Sprintf("failed to get category by ID %s", id))
	}
	return &category, nil
}

func (r *GORMCategoryRepository) AddBeer(ctx context.Context, categoryID, beerID uuid.UUID) error {
	category := models.Category{ID: categoryID}
	beer := models.Beer{ID: beerID}
	if err := r.conn(ctx).Model(&category).Omit("Beers.*").Association("Beers").Append(&beer); err != nil {
		return storeError(err, fmt.Sprintf("failed to add beer %s to category %s", beerID, categoryID))
	}
	return nil
}

func (r *GORMCategoryRepository) RemoveBeer(ctx context.Context, categoryID, beerID uuid.UUID) error {
	category := models.Category{ID: categoryID}
	beer := models.Beer{ID: beerID}
	if err := r.conn(ctx).Model(&category).Association("Beers").Delete(&beer); err != nil {
		return storeError(err, fmt.Sprintf("failed to remove beer %s from category %s", beerID, categoryID))
	}
	return nil
}
