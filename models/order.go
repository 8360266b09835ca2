package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	CartUUID      uuid.UUID       `json:"cart_uuid"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Freight       decimal.Decimal `json:"freight"`
	Total         decimal.Decimal `json:"total"`
	Coupon        *string         `json:"coupon,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	PaymentID     *string         `json:"payment_id,omitempty"`
	Status        string          `json:"status"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID            int             `json:"id"`
	OrderID       int             `json:"order_id"`
	ProductID     int             `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
}
