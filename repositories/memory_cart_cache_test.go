package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconrado/fast-ecommerce-back/models"
	"github.com/mconrado/fast-ecommerce-back/repositories"
)

func TestMemoryCartCache(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		cache := repositories.NewMemoryCartCache()

		cart := models.NewCart()
		require.NoError(t, cart.AddProduct(1, 2))
		require.NoError(t, cache.Save(ctx, cart))
		assert.Equal(t, int64(1), cart.Version)

		loaded, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		assert.Equal(t, cart.UUID, loaded.UUID)
		assert.Equal(t, int64(1), loaded.Version)
		require.Len(t, loaded.CartItems, 1)
		assert.Equal(t, 2, loaded.CartItems[0].Quantity)
	})

	t.Run("miss is a cart not found", func(t *testing.T) {
		cache := repositories.NewMemoryCartCache()

		_, err := cache.Load(ctx, models.NewCart().UUID)
		assert.ErrorIs(t, err, models.ErrCartNotFound)
	})

	t.Run("stale version loses the race explicitly", func(t *testing.T) {
		cache := repositories.NewMemoryCartCache()

		cart := models.NewCart()
		require.NoError(t, cache.Save(ctx, cart))

		first, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		second, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)

		require.NoError(t, first.AddProduct(1, 1))
		require.NoError(t, cache.Save(ctx, first))

		require.NoError(t, second.AddProduct(2, 1))
		err = cache.Save(ctx, second)
		assert.ErrorIs(t, err, models.ErrConcurrentModification)

		// the first writer's update survived
		loaded, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		require.Len(t, loaded.CartItems, 1)
		assert.Equal(t, 1, loaded.CartItems[0].ProductID)
	})
}
