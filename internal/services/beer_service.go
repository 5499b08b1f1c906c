package services

import (
	"context"
	"strings"

	"taproom/internal/mappers"
	"taproom/internal/models"
	"taproom/internal/repositories"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
)

// BeerService handles the beer catalog. A nil DTO (or false from delete)
// means the beer does not exist; errors are reserved for store failures and
// version conflicts.
type BeerService struct {
	repo repositories.BeerRepository
}

// NewBeerService creates a new BeerService.
func NewBeerService(repo repositories.BeerRepository) *BeerService {
	return &BeerService{
		repo: repo,
	}
}

// ListBeers returns one page of beers filtered by name and style.
func (s *BeerService) ListBeers(ctx context.Context, name string, style *models.BeerStyle, pageNumber, pageSize *int) (pagination.Page[models.BeerDTO], error) {
	spec := pagination.BuildPageSpec(pageNumber, pageSize)
	filter := ChooseBeerFilter(name, style)

	var (
		page pagination.Page[models.Beer]
		err  error
	)
	switch filter.Kind {
	case FilterByStyleAndName:
		page, err = s.repo.FindAllByStyleAndNameContainingIgnoreCase(ctx, filter.Style, filter.NamePattern, spec)
	case FilterByName:
		page, err = s.repo.FindAllByNameContainingIgnoreCase(ctx, filter.NamePattern, spec)
	case FilterByStyle:
		page, err = s.repo.FindAllByStyle(ctx, filter.Style, spec)
	default:
		page, err = s.repo.FindAll(ctx, spec)
	}
	if err != nil {
		return pagination.Page[models.BeerDTO]{}, err
	}
	return pagination.Map(page, mappers.BeerToBeerDTO), nil
}

// GetBeerByID retrieves a single beer.
func (s *BeerService) GetBeerByID(ctx context.Context, id uuid.UUID) (*models.BeerDTO, error) {
	beer, err := s.repo.FindByID(ctx, id)
	if err != nil || beer == nil {
		return nil, err
	}
	dto := mappers.BeerToBeerDTO(*beer)
	return &dto, nil
}

// SaveNewBeer persists a new beer. Caller supplied id, version and
// timestamps are ignored.
func (s *BeerService) SaveNewBeer(ctx context.Context, beer models.BeerDTO) (*models.BeerDTO, error) {
	entity := mappers.BeerDTOToBeer(beer)
	saved, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, err
	}
	dto := mappers.BeerToBeerDTO(*saved)
	return &dto, nil
}

// UpdateBeerByID replaces name, style, UPC and price of an existing beer.
// Quantity on hand is left as stored, and a nil Price keeps the stored price.
func (s *BeerService) UpdateBeerByID(ctx context.Context, id uuid.UUID, beer models.BeerDTO) (*models.BeerDTO, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil || found == nil {
		return nil, err
	}

	found.BeerName = beer.BeerName
	found.BeerStyle = beer.BeerStyle
	found.UPC = beer.UPC
	if beer.Price != nil {
		found.Price = *beer.Price
	}

	return s.save(ctx, found)
}

// PatchBeerByID overwrites only the fields present in beer: non-blank
// strings, a non-empty style and non-nil price or quantity.
func (s *BeerService) PatchBeerByID(ctx context.Context, id uuid.UUID, beer models.BeerDTO) (*models.BeerDTO, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil || found == nil {
		return nil, err
	}

	if strings.TrimSpace(beer.BeerName) != "" {
		found.BeerName = beer.BeerName
	}
	if strings.TrimSpace(beer.UPC) != "" {
		found.UPC = beer.UPC
	}
	if beer.Price != nil {
		found.Price = *beer.Price
	}
	if beer.BeerStyle != "" {
		found.BeerStyle = beer.BeerStyle
	}
	if beer.QuantityOnHand != nil {
		qty := *beer.QuantityOnHand
		found.QuantityOnHand = &qty
	}

	return s.save(ctx, found)
}

// DeleteBeerByID removes a beer, reporting false when there was none.
func (s *BeerService) DeleteBeerByID(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil || !exists {
		return false, err
	}
	// a concurrent delete after the check shows up as deleted == false
	return s.repo.DeleteByID(ctx, id)
}

func (s *BeerService) save(ctx context.Context, beer *models.Beer) (*models.BeerDTO, error) {
	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return nil, err
	}
	dto := mappers.BeerToBeerDTO(*saved)
	return &dto, nil
}
