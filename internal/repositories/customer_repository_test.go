package repositories_test

import (
	"context"
	"errors"
	"testing"

	"taproom/internal/models"
	"taproom/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_Lifecycle(t *testing.T) {
	repos := map[string]repositories.CustomerRepository{
		"gorm":   repositories.NewGORMCustomerRepository(openTestDB(t)),
		"memory": repositories.NewMockCustomerRepository(),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			saved, err := repo.Save(ctx, &models.Customer{Name: "Zed"})
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, saved.ID)
			_, err = repo.Save(ctx, &models.Customer{Name: "Alice"})
			require.NoError(t, err)

			all, err := repo.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Alice", all[0].Name)

			found, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			stale := *found
			found.Name = "Zed Updated"
			updated, err := repo.Save(ctx, found)
			require.NoError(t, err)
			assert.Equal(t, 1, updated.Version)

			_, err = repo.Save(ctx, &stale)
			assert.True(t, errors.Is(err, repositories.ErrConcurrencyConflict))

			deleted, err := repo.DeleteByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.True(t, deleted)
			exists, err := repo.ExistsByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.False(t, exists)

			missing, err := repo.FindByID(ctx, saved.ID)
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}
