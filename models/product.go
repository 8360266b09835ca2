package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog row. Monetary columns are stored as integer cents
// and converted to decimals at the cart boundary.
type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	URI         string           `json:"uri"`
	Description string           `json:"description"`
	Price       int              `json:"price"`
	Discount    int              `json:"discount"`
	Active      bool             `json:"active"`
	CategoryID  int              `json:"category_id"`
	SKU         *string          `json:"sku,omitempty"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Height      *decimal.Decimal `json:"height,omitempty"`
	Width       *decimal.Decimal `json:"width,omitempty"`
	Length      *decimal.Decimal `json:"length,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// UnitPrice converts the stored cents to the decimal used by carts.
func (p Product) UnitPrice() decimal.Decimal {
	return decimal.New(int64(p.Price), -2)
}

// UnitDiscount converts the stored discount cents to a decimal.
func (p Product) UnitDiscount() decimal.Decimal {
	return decimal.New(int64(p.Discount), -2)
}

// Coupon is read-only reference data fetched on every pricing pass. It is
// never cached inside a cart, only its code is.
type Coupon struct {
	Code   string          `json:"code"`
	Fee    decimal.Decimal `json:"fee"`
	Active bool            `json:"active"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
