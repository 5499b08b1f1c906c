package handlers

import (
	"taproom/internal/models"
	"taproom/internal/services"
	pkgerrors "taproom/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BeerPath is the collection path of the beer API.
const BeerPath = "/api/v1/beer"

// BeerHandler handles HTTP requests for the beer catalog.
type BeerHandler struct {
	service *services.BeerService
	log     zerolog.Logger
}

// NewBeerHandler creates a new BeerHandler.
func NewBeerHandler(service *services.BeerService, log zerolog.Logger) *BeerHandler {
	return &BeerHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the beer routes on the /api/v1 router.
func (h *BeerHandler) RegisterRoutes(router fiber.Router) {
	beerRoutes := router.Group("/beer")
	beerRoutes.Get("/", h.HandleListBeers)
	beerRoutes.Get("/:beerId", h.HandleGetBeerByID)
	beerRoutes.Post("/", h.HandleCreateBeer)
	beerRoutes.Put("/:beerId", h.HandleUpdateBeer)
	beerRoutes.Patch("/:beerId", h.HandlePatchBeer)
	beerRoutes.Delete("/:beerId", h.HandleDeleteBeer)
}

// HandleListBeers returns one page of beers. Query: beerName, beerStyle,
// pageNumber, pageSize.
func (h *BeerHandler) HandleListBeers(c *fiber.Ctx) error {
	var style *models.BeerStyle
	if raw := c.Query("beerStyle"); raw != "" {
		parsed, err := models.ParseBeerStyle(raw)
		if err != nil {
			return writeError(c, h.log, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid beer style").
				WithDetails(map[string]any{"field": "beerStyle", "allowed": models.BeerStyles()}))
		}
		style = &parsed
	}

	pageNumber, err := queryInt(c, "pageNumber")
	if err != nil {
		return writeError(c, h.log, err)
	}
	pageSize, err := queryInt(c, "pageSize")
	if err != nil {
		return writeError(c, h.log, err)
	}

	page, err := h.service.ListBeers(c.UserContext(), c.Query("beerName"), style, pageNumber, pageSize)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(page)
}

// HandleGetBeerByID retrieves a single beer.
func (h *BeerHandler) HandleGetBeerByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "beerId")
	if !ok {
		return h.beerNotFound(c)
	}
	beer, err := h.service.GetBeerByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if beer == nil {
		return h.beerNotFound(c)
	}
	return c.JSON(beer)
}

// HandleCreateBeer stores a new beer and points Location at it.
func (h *BeerHandler) HandleCreateBeer(c *fiber.Ctx) error {
	var req models.BeerDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	saved, err := h.service.SaveNewBeer(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(BeerPath + "/" + saved.ID.String())
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdateBeer replaces an existing beer.
func (h *BeerHandler) HandleUpdateBeer(c *fiber.Ctx) error {
	id, ok := parseID(c, "beerId")
	if !ok {
		return h.beerNotFound(c)
	}
	var req models.BeerDTO
	if err := decodeValidBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	updated, err := h.service.UpdateBeerByID(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if updated == nil {
		return h.beerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePatchBeer overwrites the fields present in the body.
func (h *BeerHandler) HandlePatchBeer(c *fiber.Ctx) error {
	id, ok := parseID(c, "beerId")
	if !ok {
		return h.beerNotFound(c)
	}
	var req models.BeerDTO
	if err := decodeBody(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	if req.BeerStyle != "" && !req.BeerStyle.Valid() {
		return writeError(c, h.log, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails([]map[string]string{{"beerStyle": styleMessage()}}))
	}

	patched, err := h.service.PatchBeerByID(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if patched == nil {
		return h.beerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteBeer removes a beer.
func (h *BeerHandler) HandleDeleteBeer(c *fiber.Ctx) error {
	id, ok := parseID(c, "beerId")
	if !ok {
		return h.beerNotFound(c)
	}
	deleted, err := h.service.DeleteBeerByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !deleted {
		return h.beerNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BeerHandler) beerNotFound(c *fiber.Ctx) error {
	return notFound(c, h.log, "beer not found")
}

// parseID reads a uuid path parameter. A malformed id cannot name a record,
// so callers answer it with 404.
func parseID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
