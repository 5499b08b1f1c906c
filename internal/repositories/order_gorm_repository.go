package repositories

import (
	"context"
	"errors"
	"fmt"

	"taproom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	base
}

func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{base: base{db: db}}
}

func (r *GORMOrderRepository) GetAll(ctx context.Context) ([]models.BeerOrder, error) {
	var orders []models.BeerOrder
	err := r.conn(ctx).
		Preload("Lines").
		Preload("Shipment").
		Order("created_date asc").
		Find(&orders).Error
	if err != nil {
		return nil, storeError(err, "failed to get all orders")
	}
	return orders, nil
}

// GetByID returns nil when the order does not exist.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BeerOrder, error) {
	var order models.BeerOrder
	err := r.conn(ctx).
		Preload("Lines").
		Preload("Shipment").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err, fmt.Sprintf("failed to get order by ID %s", id))
	}
	return &order, nil
}

// Create inserts the order together with its lines.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.BeerOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == uuid.Nil {
			order.Lines[i].ID = uuid.New()
		}
		order.Lines[i].BeerOrderID = order.ID
	}
	if err := r.conn(ctx).Create(order).Error; err != nil {
		return storeError(err, "failed to create order")
	}
	return nil
}

// SaveShipment creates the shipment of an order or updates its tracking
// number, bumping the order version in the same transaction.
func (r *GORMOrderRepository) SaveShipment(ctx context.Context, orderID uuid.UUID, shipment *models.BeerOrderShipment) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.BeerOrderShipment
		err := tx.First(&existing, "beer_order_id = ?", orderID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if shipment.ID == uuid.Nil {
				shipment.ID = uuid.New()
			}
			shipment.BeerOrderID = orderID
			if err := tx.Create(shipment).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			existing.TrackingNumber = shipment.TrackingNumber
			existing.Version++
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*shipment = existing
		}
		return tx.Model(&models.BeerOrder{}).
			Where("id = ?", orderID).
			Update("version", gorm.Expr("version + 1")).Error
	})
	if err != nil {
		return storeError(err, fmt.Sprintf("failed to save shipment of order %s", orderID))
	}
	return nil
}
