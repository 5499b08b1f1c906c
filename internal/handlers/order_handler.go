package handlers

import (
	"taproom/internal/models"
	"taproom/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// OrderPath is the collection path of the order API.
const OrderPath = "/api/v1/order"

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
	log     zerolog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the order routes on the /api/v1 router.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/order")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:orderId", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:orderId/shipment", h.HandleUpdateShipment)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "orderId")
	if !ok {
		return h.orderNotFound(c)
	}
	order, err := h.service.GetOrderByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if order == nil {
		return h.orderNotFound(c)
	}
	return c.JSON(order)
}

// HandleCreateOrder places a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.BeerOrderCreateDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	createdOrder, err := h.service.CreateOrder(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(OrderPath + "/" + createdOrder.ID.String())
	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateShipment records the tracking number of a shipped order.
func (h *OrderHandler) HandleUpdateShipment(c *fiber.Ctx) error {
	id, ok := parseID(c, "orderId")
	if !ok {
		return h.orderNotFound(c)
	}
	var req models.BeerOrderShipmentDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	order, err := h.service.UpdateShipment(c.UserContext(), id, req.TrackingNumber)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if order == nil {
		return h.orderNotFound(c)
	}
	return c.JSON(order)
}

func (h *OrderHandler) orderNotFound(c *fiber.Ctx) error {
	return notFound(c, h.log, "order not found")
}
