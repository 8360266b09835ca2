package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconrado/fast-ecommerce-back/libs"
	"github.com/mconrado/fast-ecommerce-back/models"
	"github.com/mconrado/fast-ecommerce-back/repositories"
	"github.com/mconrado/fast-ecommerce-back/services"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T) (*services.CartService, *repositories.MemoryCartCache) {
	t.Helper()

	store := repositories.NewMemoryProductStore(
		[]models.Product{
			{ID: 1, Name: "tee", URI: "/tee", Price: 10000, Discount: 0, Active: true},
			{ID: 2, Name: "hoodie", URI: "/hoodie", Price: 20000, Discount: 100, Active: true},
			{ID: 3, Name: "retired", URI: "/retired", Price: 5000, Active: false},
		},
		[]models.Coupon{
			{Code: "SAVE10", Fee: decimal.RequireFromString("10.00"), Active: true},
		},
	)
	cache := repositories.NewMemoryCartCache()

	return services.NewCartService(store, cache, libs.NewMemoryFreight(), time.Second), cache
}

func TestGetOrCreateCart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("no uuid creates and persists an empty cart", func(t *testing.T) {
		cart, err := svc.GetOrCreateCart(ctx, "")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, cart.UUID)
		assert.Empty(t, cart.CartItems)

		again, err := svc.GetOrCreateCart(ctx, cart.UUID.String())
		require.NoError(t, err)
		assert.Equal(t, cart.UUID, again.UUID)
	})

	t.Run("unknown uuid creates a fresh cart", func(t *testing.T) {
		cart, err := svc.GetOrCreateCart(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, cart.CartItems)
	})

	t.Run("malformed uuid is a bad reference", func(t *testing.T) {
		_, err := svc.GetOrCreateCart(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, models.ErrInvalidCartReference)
	})
}

func TestAddProductService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("seeds a new cart with the resolved price", func(t *testing.T) {
		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)

		require.Len(t, cart.CartItems, 1)
		require.NotNil(t, cart.CartItems[0].Price)
		assert.True(t, cart.CartItems[0].Price.Equal(dec(t, "100.00")))
		assert.True(t, cart.Subtotal.Equal(dec(t, "100.00")))
	})

	t.Run("adds into an existing cart and merges quantities", func(t *testing.T) {
		cart, err := svc.AddProduct(ctx, "", 1, 2)
		require.NoError(t, err)

		cart, err = svc.AddProduct(ctx, cart.UUID.String(), 1, 3)
		require.NoError(t, err)

		require.Len(t, cart.CartItems, 1)
		assert.Equal(t, 5, cart.CartItems[0].Quantity)
	})

	t.Run("unknown product is a hard failure", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "", 999, 1)
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	t.Run("inactive product is a hard failure", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "", 3, 1)
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "", 1, 0)
		assert.ErrorIs(t, err, models.ErrInvalidQuantity)
	})
}

func TestCalculateCart(t *testing.T) {
	ctx := context.Background()

	t.Run("end to end: add one product, price with no coupon and no zip", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)

		priced, err := svc.CalculateCart(ctx, cart.UUID.String(), cart)
		require.NoError(t, err)

		require.Len(t, priced.CartItems, 1)
		require.NotNil(t, priced.CartItems[0].Price)
		assert.True(t, priced.CartItems[0].Price.Equal(dec(t, "100.00")))
		assert.True(t, priced.Subtotal.Equal(dec(t, "100.00")))
		assert.True(t, priced.Discount.Equal(decimal.Zero))
		assert.True(t, priced.Freight.Equal(decimal.Zero))
	})

	t.Run("repricing with unchanged inputs is idempotent", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 2, 2)
		require.NoError(t, err)

		first, err := svc.CalculateCart(ctx, cart.UUID.String(), cart)
		require.NoError(t, err)
		subtotal, discount, freight := first.Subtotal, first.Discount, first.Freight

		second, err := svc.CalculateCart(ctx, first.UUID.String(), first)
		require.NoError(t, err)

		assert.True(t, second.Subtotal.Equal(subtotal))
		assert.True(t, second.Discount.Equal(discount))
		assert.True(t, second.Freight.Equal(freight))
	})

	t.Run("coupon fee multiplies price per item", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		coupon := "SAVE10"
		cart.Coupon = &coupon

		priced, err := svc.CalculateCart(ctx, cart.UUID.String(), cart)
		require.NoError(t, err)

		// 100.00 x 10.00 x 1; the discount is tracked beside the subtotal,
		// not subtracted from it
		assert.True(t, priced.Discount.Equal(dec(t, "1000.00")), "discount = %s", priced.Discount)
		assert.True(t, priced.Subtotal.Equal(dec(t, "100.00")))
	})

	t.Run("unresolvable coupon aborts the pass without persisting", func(t *testing.T) {
		svc, cache := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		coupon := "EXPIRED"
		cart.Coupon = &coupon

		_, err = svc.CalculateCart(ctx, cart.UUID.String(), cart)
		assert.ErrorIs(t, err, models.ErrCouponNotFound)

		cached, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		assert.Nil(t, cached.Coupon)
	})

	t.Run("zipcode triggers freight calculation", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		zipcode := "01001-000"
		cart.Zipcode = &zipcode

		priced, err := svc.CalculateCart(ctx, cart.UUID.String(), cart)
		require.NoError(t, err)

		// base 10.00 + 0.5kg x 4.90
		assert.True(t, priced.Freight.Equal(dec(t, "12.45")), "freight = %s", priced.Freight)
	})

	t.Run("posted line item with a negative quantity is rejected", func(t *testing.T) {
		svc, cache := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		cart.CartItems[0].Quantity = -3

		_, err = svc.CalculateCart(ctx, cart.UUID.String(), cart)
		assert.ErrorIs(t, err, models.ErrInvalidQuantity)

		cached, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		assert.Equal(t, 1, cached.CartItems[0].Quantity)
	})

	t.Run("posted freight is discarded when no destination is set", func(t *testing.T) {
		svc, cache := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		cart.Freight = dec(t, "-50.00")

		priced, err := svc.CalculateCart(ctx, cart.UUID.String(), cart)
		require.NoError(t, err)
		assert.True(t, priced.Freight.Equal(decimal.Zero), "freight = %s", priced.Freight)

		cached, err := cache.Load(ctx, cart.UUID)
		require.NoError(t, err)
		assert.True(t, cached.Freight.Equal(decimal.Zero))
		assert.True(t, cached.Total().Equal(dec(t, "100.00")), "total = %s", cached.Total())
	})

	t.Run("uuid mismatch with the cached cart is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)

		other := models.NewCart()
		_, err = svc.CalculateCart(ctx, cart.UUID.String(), other)
		assert.ErrorIs(t, err, models.ErrInvalidCartReference)
	})

	t.Run("cart referencing a vanished product is inconsistent", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		cart.CartItems = append(cart.CartItems, models.CartItem{ProductID: 999, Quantity: 1})

		_, err = svc.CalculateCart(ctx, cart.UUID.String(), cart)
		assert.ErrorIs(t, err, models.ErrCartInconsistency)
	})

	t.Run("stale version is a concurrent modification", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.AddProduct(ctx, "", 1, 1)
		require.NoError(t, err)
		stale := *cart

		// another writer advances the cached version
		_, err = svc.AddProduct(ctx, cart.UUID.String(), 2, 1)
		require.NoError(t, err)

		_, err = svc.CalculateCart(ctx, stale.UUID.String(), &stale)
		assert.ErrorIs(t, err, models.ErrConcurrentModification)
	})

	t.Run("empty cart cannot be priced", func(t *testing.T) {
		svc, _ := newTestService(t)

		cart, err := svc.GetOrCreateCart(ctx, "")
		require.NoError(t, err)

		_, err = svc.CalculateCart(ctx, cart.UUID.String(), cart)
		assert.ErrorIs(t, err, models.ErrEmptyCart)
	})
}

func TestSetQuantityAndRemoveService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cart, err := svc.AddProduct(ctx, "", 1, 2)
	require.NoError(t, err)

	cart, err = svc.SetQuantity(ctx, cart.UUID.String(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.CartItems[0].Quantity)

	cart, err = svc.RemoveProduct(ctx, cart.UUID.String(), 1)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)

	_, err = svc.RemoveProduct(ctx, cart.UUID.String(), 1)
	assert.ErrorIs(t, err, models.ErrProductNotInCart)

	_, err = svc.SetQuantity(ctx, uuid.NewString(), 1, 5)
	assert.ErrorIs(t, err, models.ErrCartNotFound)
}
