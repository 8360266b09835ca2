package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// ProductStore resolves cart contents against authoritative catalog data.
type ProductStore interface {
	GetProductByID(ctx context.Context, productID int) (*models.Product, error)
	// GetProducts does not guarantee result order; callers re-index by id.
	GetProducts(ctx context.Context, productIDs []int) ([]models.Product, error)
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// CartCache persists one serialized cart per identifier. Save must fail with
// models.ErrConcurrentModification when the stored version no longer matches
// the caller's.
type CartCache interface {
	Load(ctx context.Context, cartUUID uuid.UUID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// FreightCalculator is the freight provider contract.
type FreightCalculator interface {
	Calculate(ctx context.Context, zipcode string, items []models.FreightItem) (decimal.Decimal, error)
}

// CartService coordinates cache reads, product resolution, coupon lookup,
// freight and subtotal recomputation. The cache save is always the last
// step, so a failing external call never leaves partial state visible to
// other readers.
type CartService struct {
	products ProductStore
	cache    CartCache
	freight  FreightCalculator
	timeout  time.Duration
}

func NewCartService(products ProductStore, cache CartCache, freight FreightCalculator, timeout time.Duration) *CartService {
	return &CartService{
		products: products,
		cache:    cache,
		freight:  freight,
		timeout:  timeout,
	}
}

func (s *CartService) external(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// GetOrCreateCart returns the cached cart for cartUUID, or a freshly
// persisted empty cart when no identifier is supplied or nothing is cached.
func (s *CartService) GetOrCreateCart(ctx context.Context, cartUUID string) (*models.Cart, error) {
	if cartUUID != "" {
		id, err := uuid.Parse(cartUUID)
		if err != nil {
			return nil, models.ErrInvalidCartReference
		}

		cart, err := s.cache.Load(ctx, id)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, models.ErrCartNotFound) {
			return nil, fmt.Errorf("load cart: %w", err)
		}
	}

	cart := models.NewCart()
	if err := s.cache.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// AddProduct resolves the product first: an unknown product is a hard
// failure, never a silently unpriced line item. The cart is created on the
// fly when cartUUID is empty or unknown.
func (s *CartService) AddProduct(ctx context.Context, cartUUID string, productID, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	resolveCtx, cancel := s.external(ctx)
	defer cancel()
	product, err := s.products.GetProductByID(resolveCtx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve product %d: %w", productID, err)
	}

	var cart *models.Cart
	if cartUUID != "" {
		id, parseErr := uuid.Parse(cartUUID)
		if parseErr != nil {
			return nil, models.ErrInvalidCartReference
		}
		cart, err = s.cache.Load(ctx, id)
		if err != nil && !errors.Is(err, models.ErrCartNotFound) {
			return nil, fmt.Errorf("load cart: %w", err)
		}
	}

	if cart == nil {
		cart, err = models.NewCartWithProduct(*product, quantity)
		if err != nil {
			return nil, err
		}
	} else if err := cart.AddProduct(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// CalculateCart runs the pricing pass over the caller-supplied cart after
// verifying it refers to the cached one. Nothing is persisted unless every
// step succeeded.
func (s *CartService) CalculateCart(ctx context.Context, cartUUID string, cart *models.Cart) (*models.Cart, error) {
	id, err := uuid.Parse(cartUUID)
	if err != nil {
		return nil, models.ErrInvalidCartReference
	}

	cached, err := s.cache.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cached.UUID != cart.UUID {
		return nil, models.ErrInvalidCartReference
	}

	if err := s.price(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// RefreshCart reprices the cached cart in place. Checkout uses it to charge
// fresh totals rather than whatever the client last saw.
func (s *CartService) RefreshCart(ctx context.Context, cartUUID string) (*models.Cart, error) {
	id, err := uuid.Parse(cartUUID)
	if err != nil {
		return nil, models.ErrInvalidCartReference
	}

	cart, err := s.cache.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if err := s.price(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) SetQuantity(ctx context.Context, cartUUID string, productID, quantity int) (*models.Cart, error) {
	return s.mutate(ctx, cartUUID, func(cart *models.Cart) error {
		return cart.SetQuantity(productID, quantity)
	})
}

func (s *CartService) RemoveProduct(ctx context.Context, cartUUID string, productID int) (*models.Cart, error) {
	return s.mutate(ctx, cartUUID, func(cart *models.Cart) error {
		return cart.RemoveProduct(productID)
	})
}

func (s *CartService) mutate(ctx context.Context, cartUUID string, fn func(*models.Cart) error) (*models.Cart, error) {
	id, err := uuid.Parse(cartUUID)
	if err != nil {
		return nil, models.ErrInvalidCartReference
	}

	cart, err := s.cache.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// price is the reconciliation flow: validate the line items, batch-resolve
// products, overwrite cached prices, resolve the coupon (a missing coupon
// aborts the pass, it never degrades to a zero discount), then recompute
// freight, subtotal and discount wholesale. Freight is derived only from the
// cart's destination, so a caller-supplied amount never survives the pass.
func (s *CartService) price(ctx context.Context, cart *models.Cart) error {
	productIDs := make([]int, 0, len(cart.CartItems))
	for _, item := range cart.CartItems {
		if item.Quantity < 1 {
			return models.ErrInvalidQuantity
		}
		productIDs = append(productIDs, item.ProductID)
	}

	resolveCtx, cancel := s.external(ctx)
	defer cancel()
	products, err := s.products.GetProducts(resolveCtx, productIDs)
	if err != nil {
		return fmt.Errorf("resolve products: %w", err)
	}

	if err := cart.ApplyResolvedPrices(products); err != nil {
		return err
	}

	discountRate := decimal.Zero
	if cart.Coupon != nil && *cart.Coupon != "" {
		couponCtx, cancel := s.external(ctx)
		defer cancel()
		coupon, err := s.products.GetCouponByCode(couponCtx, *cart.Coupon)
		if err != nil {
			return fmt.Errorf("resolve coupon %q: %w", *cart.Coupon, err)
		}
		discountRate = coupon.Fee
	}

	if cart.Zipcode != nil && *cart.Zipcode != "" {
		byID := make(map[int]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		items := make([]models.FreightItem, 0, len(cart.CartItems))
		for _, item := range cart.CartItems {
			items = append(items, models.FreightItem{
				Product:  byID[item.ProductID],
				Quantity: item.Quantity,
			})
		}

		freightCtx, cancel := s.external(ctx)
		defer cancel()
		freight, err := s.freight.Calculate(freightCtx, *cart.Zipcode, items)
		if err != nil {
			return fmt.Errorf("calculate freight: %w", err)
		}
		cart.Freight = freight
	} else {
		cart.Freight = decimal.Zero
	}

	return cart.CalculateSubtotal(discountRate)
}
