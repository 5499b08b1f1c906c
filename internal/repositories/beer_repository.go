package repositories

import (
	"context"

	"taproom/internal/models"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
)

// BeerRepository defines the interface for beer data access.
//
// FindByID returns nil and no error when the beer does not exist. Save
// inserts beers with a nil ID (assigning id, version 0 and timestamps) and
// otherwise updates the row whose id and version match, incrementing the
// version; a version mismatch yields ErrConcurrencyConflict. DeleteByID
// reports whether a row was removed.
type BeerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Beer, error)
	FindAll(ctx context.Context, spec pagination.PageSpec) (pagination.Page[models.Beer], error)
	FindAllByNameContainingIgnoreCase(ctx context.Context, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error)
	FindAllByStyle(ctx context.Context, style models.BeerStyle, spec pagination.PageSpec) (pagination.Page[models.Beer], error)
	FindAllByStyleAndNameContainingIgnoreCase(ctx context.Context, style models.BeerStyle, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error)
	Save(ctx context.Context, beer *models.Beer) (*models.Beer, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
