package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taproom/internal/models"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMBeerRepository is a GORM implementation of BeerRepository.
type GORMBeerRepository struct {
	base
}

// NewGORMBeerRepository creates a new instance of GORMBeerRepository.
func NewGORMBeerRepository(db *gorm.DB) *GORMBeerRepository {
	return &GORMBeerRepository{base: base{db: db}}
}

func (r *GORMBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Beer, error) {
	var beer models.Beer
	if err := r.conn(ctx).First(&beer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err, fmt.Sprintf("failed to get beer by ID %s", id))
	}
	return &beer, nil
}

func (r *GORMBeerRepository) FindAll(ctx context.Context, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(ctx, spec, func(q *gorm.DB) *gorm.DB { return q })
}

func (r *GORMBeerRepository) FindAllByNameContainingIgnoreCase(ctx context.Context, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(ctx, spec, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(beer_name) LIKE LOWER(?)", pattern)
	})
}

func (r *GORMBeerRepository) FindAllByStyle(ctx context.Context, style models.BeerStyle, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(ctx, spec, func(q *gorm.DB) *gorm.DB {
		return q.Where("beer_style = ?", style)
	})
}

func (r *GORMBeerRepository) FindAllByStyleAndNameContainingIgnoreCase(ctx context.Context, style models.BeerStyle, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(ctx, spec, func(q *gorm.DB) *gorm.DB {
		return q.Where("beer_style = ?", style).Where("LOWER(beer_name) LIKE LOWER(?)", pattern)
	})
}

// findPage counts the filtered rows and then loads the requested page.
func (r *GORMBeerRepository) findPage(ctx context.Context, spec pagination.PageSpec, filter func(*gorm.DB) *gorm.DB) (pagination.Page[models.Beer], error) {
	var total int64
	if err := filter(r.conn(ctx).Model(&models.Beer{})).Count(&total).Error; err != nil {
		return pagination.Page[models.Beer]{}, storeError(err, "failed to count beers")
	}

	var beers []models.Beer
	err := filter(r.conn(ctx).Model(&models.Beer{})).
		Order(spec.Sort).
		Order("id asc").
		Offset(spec.Offset()).
		Limit(spec.Size).
		Find(&beers).Error
	if err != nil {
		return pagination.Page[models.Beer]{}, storeError(err, "failed to list beers")
	}
	return pagination.NewPage(beers, spec, total), nil
}

func (r *GORMBeerRepository) Save(ctx context.Context, beer *models.Beer) (*models.Beer, error) {
	if beer.ID == uuid.Nil {
		beer.ID = uuid.New()
		beer.Version = 0
		if err := r.conn(ctx).Omit(clause.Associations).Create(beer).Error; err != nil {
			return nil, storeError(err, "failed to create beer")
		}
		return beer, nil
	}

	now := time.Now()
	res := r.conn(ctx).Model(&models.Beer{}).
		Where("id = ? AND version = ?", beer.ID, beer.Version).
		Updates(map[string]any{
			"beer_name":        beer.BeerName,
			"beer_style":       beer.BeerStyle,
			"upc":              beer.UPC,
			"quantity_on_hand": beer.QuantityOnHand,
			"price":            beer.Price,
			"version":          beer.Version + 1,
			"update_date":      now,
		})
	if res.Error != nil {
		return nil, storeError(res.Error, fmt.Sprintf("failed to update beer %s", beer.ID))
	}
	if res.RowsAffected == 0 {
		return nil, conflictError(fmt.Sprintf("beer %s version %d is stale", beer.ID, beer.Version))
	}
	beer.Version++
	beer.UpdateDate = now
	return beer, nil
}

func (r *GORMBeerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.Beer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, storeError(err, fmt.Sprintf("failed to check beer %s", id))
	}
	return count > 0, nil
}

func (r *GORMBeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM beer_category WHERE beer_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Beer{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, storeError(err, fmt.Sprintf("failed to delete beer %s", id))
	}
	return deleted, nil
}
