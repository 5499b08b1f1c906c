package services

import (
	"context"
	"fmt"

	"taproom/internal/models"
	"taproom/internal/repositories"
	pkgerrors "taproom/pkg/errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	beerRepo     repositories.BeerRepository
	customerRepo repositories.CustomerRepository
	publisher    EventPublisher // nil disables event publishing
	log          zerolog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, beerRepo repositories.BeerRepository, customerRepo repositories.CustomerRepository, publisher EventPublisher, log zerolog.Logger) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		beerRepo:     beerRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		log:          log,
	}
}

// ListOrders retrieves all orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.BeerOrder, error) {
	return s.orderRepo.GetAll(ctx)
}

// GetOrderByID retrieves a single order, or nil when it does not exist.
func (s *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.BeerOrder, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CreateOrder places an order for an existing customer. Every line must
// reference an existing beer.
func (s *OrderService) CreateOrder(ctx context.Context, req models.BeerOrderCreateDTO) (*models.BeerOrder, error) {
	exists, err := s.customerRepo.ExistsByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer does not exist").
			WithDetails([]map[string]string{{"customerId": fmt.Sprintf("customer %s not found", req.CustomerID)}})
	}

	lines := make([]models.BeerOrderLine, 0, len(req.Lines))
	for _, item := range req.Lines {
		if item.OrderQuantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order quantity must be positive").
				WithDetails([]map[string]string{{"orderQuantity": "must be greater than 0"}})
		}
		found, err := s.beerRepo.ExistsByID(ctx, item.BeerID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "beer does not exist").
				WithDetails([]map[string]string{{"beerId": fmt.Sprintf("beer %s not found", item.BeerID)}})
		}
		lines = append(lines, models.BeerOrderLine{
			BeerID:        item.BeerID,
			OrderQuantity: item.OrderQuantity,
		})
	}

	newOrder := &models.BeerOrder{
		CustomerRef: req.CustomerRef,
		CustomerID:  req.CustomerID,
		Lines:       lines,
	}
	if err := s.orderRepo.Create(ctx, newOrder); err != nil {
		return nil, err
	}

	s.publish(models.OrderEventCreated, newOrder)
	return newOrder, nil
}

// UpdateShipment records the tracking number of an order. It returns nil
// when the order does not exist.
func (s *OrderService) UpdateShipment(ctx context.Context, orderID uuid.UUID, trackingNumber string) (*models.BeerOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil || order == nil {
		return nil, err
	}

	shipment := &models.BeerOrderShipment{TrackingNumber: trackingNumber}
	if err := s.orderRepo.SaveShipment(ctx, orderID, shipment); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		s.publish(models.OrderEventShipped, updated)
	}
	return updated, nil
}

// publish never fails the request; a broken broker only costs the event.
func (s *OrderService) publish(routingKey string, order *models.BeerOrder) {
	if s.publisher == nil {
		s.log.Debug().Str("routing_key", routingKey).Msg("event publisher not configured, skipping")
		return
	}

	lines := make([]map[string]any, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, map[string]any{
			"beerId":        line.BeerID,
			"orderQuantity": line.OrderQuantity,
		})
	}
	payload := map[string]any{
		"orderId":     order.ID,
		"customerId":  order.CustomerID,
		"customerRef": order.CustomerRef,
		"lines":       lines,
	}
	if order.Shipment != nil {
		payload["trackingNumber"] = order.Shipment.TrackingNumber
	}

	if err := s.publisher.PublishJSON(routingKey, payload); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Str("routing_key", routingKey).Msg("failed to publish order event")
		return
	}
	s.log.Info().Str("order_id", order.ID.String()).Str("routing_key", routingKey).Msg("order event published")
}
