package handlers

import (
	"taproom/internal/models"
	"taproom/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CustomerPath is the collection path of the customer API.
const CustomerPath = "/api/v1/customer"

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service *services.CustomerService
	log     zerolog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the customer routes on the /api/v1 router.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customer")
	customerRoutes.Get("/", h.HandleListCustomers)
	customerRoutes.Get("/:customerId", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:customerId", h.HandleUpdateCustomer)
	customerRoutes.Patch("/:customerId", h.HandlePatchCustomer)
	customerRoutes.Delete("/:customerId", h.HandleDeleteCustomer)
}

func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.ListCustomers(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerId")
	if !ok {
		return h.customerNotFound(c)
	}
	customer, err := h.service.GetCustomerByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if customer == nil {
		return h.customerNotFound(c)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req models.CustomerDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	saved, err := h.service.SaveNewCustomer(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(CustomerPath + "/" + saved.ID.String())
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerId")
	if !ok {
		return h.customerNotFound(c)
	}
	var req models.CustomerDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	updated, err := h.service.UpdateCustomerByID(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if updated == nil {
		return h.customerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) HandlePatchCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerId")
	if !ok {
		return h.customerNotFound(c)
	}
	var req models.CustomerDTO
	if err := decodeBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	patched, err := h.service.PatchCustomerByID(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if patched == nil {
		return h.customerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerId")
	if !ok {
		return h.customerNotFound(c)
	}
	deleted, err := h.service.DeleteCustomerByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !deleted {
		return h.customerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) customerNotFound(c *fiber.Ctx) error {
	return notFound(c, h.log, "customer not found")
}
