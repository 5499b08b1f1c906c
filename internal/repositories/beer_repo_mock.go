package repositories

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"taproom/internal/models"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
)

// MockBeerRepository is an in-memory implementation of BeerRepository.
type MockBeerRepository struct {
	beers map[uuid.UUID]models.Beer
	mu    sync.RWMutex
}

// NewMockBeerRepository creates a new instance of MockBeerRepository.
func NewMockBeerRepository() *MockBeerRepository {
	return &MockBeerRepository{
		beers: make(map[uuid.UUID]models.Beer),
	}
}

func (r *MockBeerRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beer, ok := r.beers[id]
	if !ok {
		return nil, nil
	}
	beer = cloneBeer(beer)
	return &beer, nil
}

func (r *MockBeerRepository) FindAll(_ context.Context, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(spec, func(models.Beer) bool { return true }), nil
}

func (r *MockBeerRepository) FindAllByNameContainingIgnoreCase(_ context.Context, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	like := likeRegexp(pattern)
	return r.findPage(spec, func(b models.Beer) bool { return like.MatchString(b.BeerName) }), nil
}

func (r *MockBeerRepository) FindAllByStyle(_ context.Context, style models.BeerStyle, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	return r.findPage(spec, func(b models.Beer) bool { return b.BeerStyle == style }), nil
}

func (r *MockBeerRepository) FindAllByStyleAndNameContainingIgnoreCase(_ context.Context, style models.BeerStyle, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	like := likeRegexp(pattern)
	return r.findPage(spec, func(b models.Beer) bool {
		return b.BeerStyle == style && like.MatchString(b.BeerName)
	}), nil
}

func (r *MockBeerRepository) findPage(spec pagination.PageSpec, keep func(models.Beer) bool) pagination.Page[models.Beer] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Beer, 0, len(r.beers))
	for _, beer := range r.beers {
		if keep(beer) {
			matched = append(matched, cloneBeer(beer))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].BeerName != matched[j].BeerName {
			return matched[i].BeerName < matched[j].BeerName
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	start := spec.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + spec.Size
	if end < start || end > len(matched) {
		end = len(matched)
	}
	return pagination.NewPage(matched[start:end], spec, total)
}

func (r *MockBeerRepository) Save(_ context.Context, beer *models.Beer) (*models.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if beer.ID == uuid.Nil {
		beer.ID = uuid.New()
		beer.Version = 0
		beer.CreatedDate = now
		beer.UpdateDate = now
		r.beers[beer.ID] = cloneBeer(*beer)
		return beer, nil
	}

	stored, ok := r.beers[beer.ID]
	if !ok || stored.Version != beer.Version {
		return nil, conflictError("beer " + beer.ID.String() + " is stale")
	}
	beer.Version++
	beer.CreatedDate = stored.CreatedDate
	beer.UpdateDate = now
	r.beers[beer.ID] = cloneBeer(*beer)
	return beer, nil
}

// cloneBeer detaches the pointer fields so callers never share stored state.
func cloneBeer(beer models.Beer) models.Beer {
	if beer.QuantityOnHand != nil {
		qty := *beer.QuantityOnHand
		beer.QuantityOnHand = &qty
	}
	beer.Categories = nil
	return beer
}

func (r *MockBeerRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.beers[id]
	return ok, nil
}

func (r *MockBeerRepository) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.beers[id]; !ok {
		return false, nil
	}
	delete(r.beers, id)
	return true, nil
}

// likeRegexp compiles a SQL LIKE pattern into a case-insensitive regexp.
func likeRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, ch := range pattern {
		switch ch {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
