package libs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconrado/fast-ecommerce-back/libs"
	"github.com/mconrado/fast-ecommerce-back/models"
)

func TestMemoryFreight(t *testing.T) {
	ctx := context.Background()
	freight := libs.NewMemoryFreight()

	t.Run("no items costs nothing", func(t *testing.T) {
		amount, err := freight.Calculate(ctx, "01001-000", nil)
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.Zero))
	})

	t.Run("default weight applies when the product has none", func(t *testing.T) {
		amount, err := freight.Calculate(ctx, "01001-000", []models.FreightItem{
			{Product: models.Product{ID: 1}, Quantity: 1},
		})
		require.NoError(t, err)
		// 10.00 + 0.5 x 4.90
		assert.True(t, amount.Equal(decimal.RequireFromString("12.45")), "amount = %s", amount)
	})

	t.Run("product weight scales with quantity", func(t *testing.T) {
		weight := decimal.RequireFromString("2")
		amount, err := freight.Calculate(ctx, "01001-000", []models.FreightItem{
			{Product: models.Product{ID: 1, Weight: &weight}, Quantity: 3},
		})
		require.NoError(t, err)
		// 10.00 + 6kg x 4.90
		assert.True(t, amount.Equal(decimal.RequireFromString("39.40")), "amount = %s", amount)
	})
}

func TestFreightClient(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the provider amount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/freight/calculate", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"amount": "23.90"}`))
		}))
		defer server.Close()

		client := libs.NewFreightClient(server.URL, time.Second)
		amount, err := client.Calculate(ctx, "01001-000", []models.FreightItem{
			{Product: models.Product{ID: 1}, Quantity: 1},
		})
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.RequireFromString("23.90")))
	})

	t.Run("provider failure is a dependency error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := libs.NewFreightClient(server.URL, time.Second)
		_, err := client.Calculate(ctx, "01001-000", nil)
		assert.ErrorIs(t, err, models.ErrDependencyUnavailable)
	})
}
