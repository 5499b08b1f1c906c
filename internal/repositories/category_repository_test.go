package repositories_test

import (
	"context"
	"testing"

	"taproom/internal/models"
	"taproom/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_AddAndRemoveBeer(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	beers := repositories.NewGORMBeerRepository(db)
	categories := repositories.NewGORMCategoryRepository(db)

	beer, err := beers.Save(ctx, newBeer("Galaxy Cat", models.BeerStylePaleAle))
	require.NoError(t, err)

	category := &models.Category{Description: "Testing Category"}
	require.NoError(t, categories.Create(ctx, category))
	assert.NotEqual(t, uuid.Nil, category.ID)

	require.NoError(t, categories.AddBeer(ctx, category.ID, beer.ID))

	loaded, err := categories.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Beers, 1)
	assert.Equal(t, "Galaxy Cat", loaded.Beers[0].BeerName)

	require.NoError(t, categories.RemoveBeer(ctx, category.ID, beer.ID))
	loaded, err = categories.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Beers)

	missing, err := categories.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBeerRepository_DeleteDetachesCategories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	beers := repositories.NewGORMBeerRepository(db)
	categories := repositories.NewGORMCategoryRepository(db)

	beer, err := beers.Save(ctx, newBeer("Crank", models.BeerStylePaleAle))
	require.NoError(t, err)
	category := &models.Category{Description: "Seasonal"}
	require.NoError(t, categories.Create(ctx, category))
	require.NoError(t, categories.AddBeer(ctx, category.ID, beer.ID))

	deleted, err := beers.DeleteByID(ctx, beer.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var links int64
	require.NoError(t, db.Table("beer_category").Where("beer_id = ?", beer.ID).Count(&links).Error)
	assert.Zero(t, links)
}
