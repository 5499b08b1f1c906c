package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"taproom/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[uuid.UUID]models.BeerOrder
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uuid.UUID]models.BeerOrder),
	}
}

// GetAll returns all orders, oldest first.
func (r *MockOrderRepository) GetAll(_ context.Context) ([]models.BeerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.BeerOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedDate.Before(orderList[j].CreatedDate)
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*models.BeerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(_ context.Context, order *models.BeerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedDate = now
	order.LastModifiedDate = now
	lines := make([]models.BeerOrderLine, len(order.Lines))
	for i, line := range order.Lines {
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
		}
		line.BeerOrderID = order.ID
		line.CreatedDate = now
		line.LastModifiedDate = now
		lines[i] = line
	}
	order.Lines = lines
	r.orders[order.ID] = *order
	return nil
}

// SaveShipment sets the shipment of an existing order.
func (r *MockOrderRepository) SaveShipment(_ context.Context, orderID uuid.UUID, shipment *models.BeerOrderShipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order with ID %s not found for shipment", orderID)
	}
	now := time.Now()
	if order.Shipment == nil {
		if shipment.ID == uuid.Nil {
			shipment.ID = uuid.New()
		}
		shipment.CreatedDate = now
	} else {
		shipment.ID = order.Shipment.ID
		shipment.Version = order.Shipment.Version + 1
		shipment.CreatedDate = order.Shipment.CreatedDate
	}
	shipment.BeerOrderID = orderID
	shipment.LastModifiedDate = now
	stored := *shipment
	order.Shipment = &stored
	order.Version++
	order.LastModifiedDate = now
	r.orders[orderID] = order
	return nil
}
