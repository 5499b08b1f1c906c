package bootstrap

import (
	"context"
	"fmt"

	"taproom/internal/models"
	"taproom/internal/repositories"
	"taproom/pkg/pagination"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// csvThreshold is the beer count below which the CSV catalog is loaded.
const csvThreshold = 10

// Loader seeds an empty database with sample data.
type Loader struct {
	beers     repositories.BeerRepository
	customers repositories.CustomerRepository
	log       zerolog.Logger
}

// NewLoader creates a new Loader.
func NewLoader(beers repositories.BeerRepository, customers repositories.CustomerRepository, log zerolog.Logger) *Loader {
	return &Loader{
		beers:     beers,
		customers: customers,
		log:       log,
	}
}

// Run seeds beers and customers when their tables are empty, then loads the
// CSV catalog at csvPath when one is given and the catalog is still small.
func (l *Loader) Run(ctx context.Context, csvPath string) error {
	if err := l.loadBeers(ctx); err != nil {
		return err
	}
	if err := l.loadCustomers(ctx); err != nil {
		return err
	}
	if csvPath == "" {
		return nil
	}
	return l.loadCSV(ctx, csvPath)
}

func (l *Loader) beerCount(ctx context.Context) (int64, error) {
	one := 1
	page, err := l.beers.FindAll(ctx, pagination.BuildPageSpec(nil, &one))
	if err != nil {
		return 0, err
	}
	return page.TotalElements, nil
}

func (l *Loader) loadBeers(ctx context.Context) error {
	count, err := l.beerCount(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, beer := range sampleBeers() {
		if _, err := l.beers.Save(ctx, &beer); err != nil {
			return fmt.Errorf("failed to seed beer %s: %w", beer.BeerName, err)
		}
	}
	l.log.Info().Int("count", len(sampleBeers())).Msg("seeded sample beers")
	return nil
}

func (l *Loader) loadCustomers(ctx context.Context) error {
	existing, err := l.customers.FindAll(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	names := []string{"Customer 1", "Customer 2", "Customer 3"}
	for _, name := range names {
		if _, err := l.customers.Save(ctx, &models.Customer{Name: name}); err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", name, err)
		}
	}
	l.log.Info().Int("count", len(names)).Msg("seeded sample customers")
	return nil
}

func (l *Loader) loadCSV(ctx context.Context, path string) error {
	count, err := l.beerCount(ctx)
	if err != nil {
		return err
	}
	if count >= csvThreshold {
		l.log.Debug().Int64("count", count).Msg("beer catalog already populated, skipping csv")
		return nil
	}

	records, err := ReadBeerCSV(path)
	if err != nil {
		return err
	}
	for _, record := range records {
		beer := record.Beer()
		if _, err := l.beers.Save(ctx, &beer); err != nil {
			return fmt.Errorf("failed to load csv beer %s: %w", beer.BeerName, err)
		}
	}
	l.log.Info().Int("count", len(records)).Str("path", path).Msg("loaded beers from csv")
	return nil
}

func sampleBeers() []models.Beer {
	qty := func(v int) *int { return &v }
	return []models.Beer{
		{
			BeerName:       "Galaxy Cat",
			BeerStyle:      models.BeerStylePaleAle,
			UPC:            "12356",
			Price:          decimal.RequireFromString("12.99"),
			QuantityOnHand: qty(122),
		},
		{
			BeerName:       "Crank",
			BeerStyle:      models.BeerStylePaleAle,
			UPC:            "12356222",
			Price:          decimal.RequireFromString("11.99"),
			QuantityOnHand: qty(392),
		},
		{
			BeerName:       "Sunshine City",
			BeerStyle:      models.BeerStyleIPA,
			UPC:            "12356",
			Price:          decimal.RequireFromString("13.99"),
			QuantityOnHand: qty(144),
		},
	}
}
