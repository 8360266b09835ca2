package repositories_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconrado/fast-ecommerce-back/models"
	"github.com/mconrado/fast-ecommerce-back/repositories"
)

func newStore() *repositories.MemoryProductStore {
	return repositories.NewMemoryProductStore(
		[]models.Product{
			{ID: 1, Name: "tee", Price: 10000, Active: true},
			{ID: 2, Name: "hoodie", Price: 20000, Active: true},
			{ID: 3, Name: "retired", Price: 5000, Active: false},
		},
		[]models.Coupon{
			{Code: "SAVE10", Fee: decimal.RequireFromString("10.00"), Active: true},
			{Code: "OLD", Fee: decimal.RequireFromString("5.00"), Active: false},
		},
	)
}

func TestMemoryProductStore(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	t.Run("get product by id", func(t *testing.T) {
		product, err := store.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "tee", product.Name)
	})

	t.Run("unknown and inactive products are not found", func(t *testing.T) {
		_, err := store.GetProductByID(ctx, 99)
		assert.ErrorIs(t, err, models.ErrProductNotFound)

		_, err = store.GetProductByID(ctx, 3)
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	t.Run("batch resolve returns only active matches", func(t *testing.T) {
		products, err := store.GetProducts(ctx, []int{1, 2, 3, 99})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("coupon lookup", func(t *testing.T) {
		coupon, err := store.GetCouponByCode(ctx, "SAVE10")
		require.NoError(t, err)
		assert.True(t, coupon.Fee.Equal(decimal.RequireFromString("10.00")))

		_, err = store.GetCouponByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, models.ErrCouponNotFound)

		_, err = store.GetCouponByCode(ctx, "OLD")
		assert.ErrorIs(t, err, models.ErrCouponNotFound)
	})
}
