package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product's quantity and price inside a cart. Price stays
// nil until a pricing pass resolves it against the catalog.
type CartItem struct {
	ProductID     int              `json:"product_id"`
	Quantity      int              `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal  `json:"discount_price"`
}

// Cart is the unit of checkout. It is serialized as-is into the cache, so
// the JSON field names are the wire format and must round-trip losslessly.
// Version backs the optimistic save check in the cache store.
type Cart struct {
	UUID      uuid.UUID       `json:"uuid"`
	CartItems []CartItem      `json:"cart_items"`
	Coupon    *string         `json:"coupon,omitempty"`
	Discount  decimal.Decimal `json:"discount"`
	Freight   decimal.Decimal `json:"freight"`
	Zipcode   *string         `json:"zipcode,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Version   int64           `json:"version"`
}

// NewCart returns an empty cart with a fresh identifier.
func NewCart() *Cart {
	return &Cart{
		UUID:      uuid.New(),
		CartItems: []CartItem{},
	}
}

// NewCartWithProduct returns a cart seeded with one resolved product.
func NewCartWithProduct(product Product, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	price := product.UnitPrice()
	cart := NewCart()
	cart.CartItems = append(cart.CartItems, CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     &price,
	})
	cart.Subtotal = price.Mul(decimal.NewFromInt(int64(quantity)))
	return cart, nil
}

func (c *Cart) itemIndex(productID int) int {
	for i := range c.CartItems {
		if c.CartItems[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddProduct increments the quantity of an existing line item or appends a
// new one with an unresolved price. A cart never holds two line items for
// the same product.
func (c *Cart) AddProduct(productID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if i := c.itemIndex(productID); i >= 0 {
		c.CartItems[i].Quantity += quantity
		return nil
	}

	c.CartItems = append(c.CartItems, CartItem{
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

// SetQuantity overwrites the quantity of an existing line item. Zero removes
// the item.
func (c *Cart) SetQuantity(productID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.RemoveProduct(productID)
	}

	i := c.itemIndex(productID)
	if i < 0 {
		return ErrProductNotInCart
	}
	c.CartItems[i].Quantity = quantity
	return nil
}

// IncreaseQuantity adds one to an existing line item, no-op when absent.
func (c *Cart) IncreaseQuantity(productID int) {
	if i := c.itemIndex(productID); i >= 0 {
		c.CartItems[i].Quantity++
	}
}

// DecreaseQuantity subtracts one from an existing line item, never below
// zero, no-op when absent.
func (c *Cart) DecreaseQuantity(productID int) {
	if i := c.itemIndex(productID); i >= 0 && c.CartItems[i].Quantity > 0 {
		c.CartItems[i].Quantity--
	}
}

// RemoveProduct deletes the matching line item.
func (c *Cart) RemoveProduct(productID int) error {
	i := c.itemIndex(productID)
	if i < 0 {
		return ErrProductNotInCart
	}
	c.CartItems = append(c.CartItems[:i], c.CartItems[i+1:]...)
	return nil
}

// ApplyResolvedPrices reconciles the cart against the authoritative product
// set and overwrites each line item's price and discount. The resolved set
// must cover the cart exactly; any mismatch means the cart's view of its
// contents no longer matches the catalog (a product was removed or
// deactivated after being added) and the cart is left untouched.
func (c *Cart) ApplyResolvedPrices(products []Product) error {
	if len(products) != len(c.CartItems) {
		return ErrCartInconsistency
	}

	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for i := range c.CartItems {
		if _, ok := byID[c.CartItems[i].ProductID]; !ok {
			return ErrCartInconsistency
		}
	}

	for i := range c.CartItems {
		product := byID[c.CartItems[i].ProductID]
		price := product.UnitPrice()
		c.CartItems[i].Price = &price
		c.CartItems[i].DiscountPrice = product.UnitDiscount()
	}
	return nil
}

// CalculateSubtotal recomputes subtotal and discount wholesale from the
// line items. Recomputing from scratch on every pricing pass keeps the
// cached cart from drifting away from authoritative prices. Every line item
// must carry a resolved price.
func (c *Cart) CalculateSubtotal(discountRate decimal.Decimal) error {
	if len(c.CartItems) == 0 {
		return ErrEmptyCart
	}
	for i := range c.CartItems {
		if c.CartItems[i].Price == nil {
			return ErrPricingDataMissing
		}
	}

	subtotal := decimal.Zero
	discount := decimal.Zero
	for i := range c.CartItems {
		item := &c.CartItems[i]
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Price.Mul(qty))
		if discountRate.IsPositive() {
			item.DiscountPrice = item.Price.Mul(discountRate)
			discount = discount.Add(item.DiscountPrice.Mul(qty))
		}
	}

	c.Subtotal = subtotal
	c.Discount = discount
	return nil
}

// Total is the amount actually charged at checkout: the discount stays
// informational on the cart and only reduces the total here.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal.Sub(c.Discount).Add(c.Freight)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
