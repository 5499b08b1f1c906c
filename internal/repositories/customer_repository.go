package repositories

import (
	"context"

	"taproom/internal/models"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data access. It has
// the same absence and versioning rules as BeerRepository.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
