package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"taproom/internal/models"
	"taproom/internal/repositories"
	pkgerrors "taproom/pkg/errors"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBeer(name string, style models.BeerStyle) *models.Beer {
	qty := 12
	return &models.Beer{
		BeerName:       name,
		BeerStyle:      style,
		UPC:            "123456",
		QuantityOnHand: &qty,
		Price:          decimal.RequireFromString("12.99"),
	}
}

// beerRepositories runs each test against both implementations.
func beerRepositories(t *testing.T) map[string]repositories.BeerRepository {
	return map[string]repositories.BeerRepository{
		"gorm":   repositories.NewGORMBeerRepository(openTestDB(t)),
		"memory": repositories.NewMockBeerRepository(),
	}
}

func TestBeerRepository_SaveAssignsServerFields(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			saved, err := repo.Save(ctx, newBeer("Saved Beer", models.BeerStyleIPA))
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, saved.ID)
			assert.Equal(t, 0, saved.Version)
			assert.False(t, saved.CreatedDate.IsZero())

			found, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Saved Beer", found.BeerName)
			assert.True(t, decimal.RequireFromString("12.99").Equal(found.Price))
			require.NotNil(t, found.QuantityOnHand)
			assert.Equal(t, 12, *found.QuantityOnHand)
		})
	}
}

func TestBeerRepository_FindByIDMissing(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			found, err := repo.FindByID(context.Background(), uuid.New())
			assert.NoError(t, err)
			assert.Nil(t, found)
		})
	}
}

func TestBeerRepository_UpdateIncrementsVersion(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saved, err := repo.Save(ctx, newBeer("Crank", models.BeerStylePaleAle))
			require.NoError(t, err)

			current, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			current.BeerName = "Crank Updated"
			current.QuantityOnHand = nil

			updated, err := repo.Save(ctx, current)
			require.NoError(t, err)
			assert.Equal(t, 1, updated.Version)

			found, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "Crank Updated", found.BeerName)
			assert.Equal(t, 1, found.Version)
			assert.Nil(t, found.QuantityOnHand)
		})
	}
}

func TestBeerRepository_StaleVersionConflicts(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saved, err := repo.Save(ctx, newBeer("Sunshine City", models.BeerStyleIPA))
			require.NoError(t, err)

			first, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			second, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)

			first.UPC = "first"
			_, err = repo.Save(ctx, first)
			require.NoError(t, err)

			second.UPC = "second"
			_, err = repo.Save(ctx, second)
			require.Error(t, err)
			assert.True(t, errors.Is(err, repositories.ErrConcurrencyConflict))
			assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.CodeOf(err))

			found, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "first", found.UPC)
		})
	}
}

func TestBeerRepository_DeleteByID(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saved, err := repo.Save(ctx, newBeer("Doomed", models.BeerStyleAle))
			require.NoError(t, err)

			exists, err := repo.ExistsByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.True(t, exists)

			deleted, err := repo.DeleteByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			deleted, err = repo.DeleteByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.False(t, deleted)

			exists, err = repo.ExistsByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestBeerRepository_Filters(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, b := range []*models.Beer{
				newBeer("Hazy IPA", models.BeerStyleIPA),
				newBeer("West Coast ipa", models.BeerStyleIPA),
				newBeer("Session Ipa", models.BeerStylePaleAle),
				newBeer("Oatmeal Stout", models.BeerStyleStout),
				newBeer("Imperial Stout", models.BeerStyleStout),
			} {
				_, err := repo.Save(ctx, b)
				require.NoError(t, err)
			}
			spec := pagination.BuildPageSpec(nil, nil)

			all, err := repo.FindAll(ctx, spec)
			require.NoError(t, err)
			assert.Equal(t, int64(5), all.TotalElements)
			assert.Equal(t, "Hazy IPA", all.Content[0].BeerName)
			assert.Equal(t, "West Coast ipa", all.Content[4].BeerName)

			byName, err := repo.FindAllByNameContainingIgnoreCase(ctx, "%IPA%", spec)
			require.NoError(t, err)
			assert.Equal(t, int64(3), byName.TotalElements)

			byStyle, err := repo.FindAllByStyle(ctx, models.BeerStyleStout, spec)
			require.NoError(t, err)
			assert.Equal(t, int64(2), byStyle.TotalElements)

			both, err := repo.FindAllByStyleAndNameContainingIgnoreCase(ctx, models.BeerStyleIPA, "%ipa%", spec)
			require.NoError(t, err)
			assert.Equal(t, int64(2), both.TotalElements)
			for _, b := range both.Content {
				assert.Equal(t, models.BeerStyleIPA, b.BeerStyle)
			}
		})
	}
}

func TestBeerRepository_Paging(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 7; i++ {
				_, err := repo.Save(ctx, newBeer(fmt.Sprintf("Beer %02d", i), models.BeerStyleLager))
				require.NoError(t, err)
			}
			number, size := 2, 3
			page, err := repo.FindAll(ctx, pagination.BuildPageSpec(&number, &size))
			require.NoError(t, err)

			assert.Equal(t, int64(7), page.TotalElements)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 2, page.Number)
			require.Len(t, page.Content, 1)
			assert.Equal(t, "Beer 06", page.Content[0].BeerName)

			number = 5
			past, err := repo.FindAll(ctx, pagination.BuildPageSpec(&number, &size))
			require.NoError(t, err)
			assert.Empty(t, past.Content)
			assert.Equal(t, int64(7), past.TotalElements)
		})
	}
}

func TestBeerRepository_HugePageNumberIsEmpty(t *testing.T) {
	for name, repo := range beerRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repo.Save(ctx, newBeer("Only Beer", models.BeerStyleStout))
			require.NoError(t, err)

			number, size := math.MaxInt/20, 25
			page, err := repo.FindAll(ctx, pagination.BuildPageSpec(&number, &size))
			require.NoError(t, err)
			assert.Empty(t, page.Content)
			assert.Equal(t, int64(1), page.TotalElements)
			assert.Equal(t, pagination.MaxPage, page.Number)
		})
	}
}
