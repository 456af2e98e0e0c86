package catalog

import (
	"context"
	"testing"

	"cafepos-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	t.Run("Empty store yields empty menu", func(t *testing.T) {
		products, err := repo.Products(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Save then load", func(t *testing.T) {
		menu := []Product{
			{ID: "1", Name: "Espresso", Price: 25},
			{ID: "2", Name: "Cappuccino", Price: 35},
			{ID: "3", Name: "Latte", Price: 40},
		}
		require.NoError(t, repo.SaveProducts(ctx, menu))

		loaded, err := repo.Products(ctx)
		require.NoError(t, err)
		assert.Equal(t, menu, loaded)
	})
}

func TestRepository_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyMenu, []byte("{not json")))

	repo := NewRepository(store)
	_, err := repo.Products(ctx)
	assert.Error(t, err)
}
