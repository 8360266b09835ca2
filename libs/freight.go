package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// FreightClient calls an external freight provider over HTTP. A failure or
// timeout here aborts the whole pricing pass, so every error is marked as a
// dependency failure.
type FreightClient struct {
	baseURL string
	client  *http.Client
}

func NewFreightClient(baseURL string, timeout time.Duration) *FreightClient {
	return &FreightClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type freightRequest struct {
	Zipcode string               `json:"zipcode"`
	Items   []models.FreightItem `json:"items"`
}

type freightResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

func (f *FreightClient) Calculate(ctx context.Context, zipcode string, items []models.FreightItem) (decimal.Decimal, error) {
	body, err := json.Marshal(freightRequest{Zipcode: zipcode, Items: items})
	if err != nil {
		return decimal.Zero, fmt.Errorf("marshal freight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/freight/calculate", bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("build freight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("call freight provider: %w: %w", models.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("freight provider returned %d: %w", resp.StatusCode, models.ErrDependencyUnavailable)
	}

	var out freightResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("decode freight response: %w: %w", models.ErrDependencyUnavailable, err)
	}
	return out.Amount, nil
}

// MemoryFreight is the in-process freight calculator used when no provider
// is configured: a flat base charge plus a per-kilogram rate, with a default
// weight for products that never had one set.
type MemoryFreight struct {
	Base          decimal.Decimal
	PerKg         decimal.Decimal
	DefaultWeight decimal.Decimal
}

func NewMemoryFreight() *MemoryFreight {
	return &MemoryFreight{
		Base:          decimal.RequireFromString("10.00"),
		PerKg:         decimal.RequireFromString("4.90"),
		DefaultWeight: decimal.RequireFromString("0.5"),
	}
}

func (f *MemoryFreight) Calculate(ctx context.Context, zipcode string, items []models.FreightItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, nil
	}

	weight := decimal.Zero
	for _, item := range items {
		w := f.DefaultWeight
		if item.Product.Weight != nil {
			w = *item.Product.Weight
		}
		weight = weight.Add(w.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return f.Base.Add(weight.Mul(f.PerKg)).Round(2), nil
}
