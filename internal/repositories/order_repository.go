package repositories

import (
	"context"

	"taproom/internal/models"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for beer order data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.BeerOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.BeerOrder, error)
	Create(ctx context.Context, order *models.BeerOrder) error
	SaveShipment(ctx context.Context, orderID uuid.UUID, shipment *models.BeerOrderShipment) error
}
