package models

import "errors"

// Domain errors surfaced to API callers. Infra failures are wrapped with
// ErrDependencyUnavailable so callers can tell them apart from domain
// failures and decide their own retry policy.
var (
	ErrEmptyCart              = errors.New("cart has no items")
	ErrPricingDataMissing     = errors.New("price or quantity not found in cart item")
	ErrCartInconsistency      = errors.New("cart items do not match resolved product list")
	ErrProductNotFound        = errors.New("product not found")
	ErrCouponNotFound         = errors.New("coupon not found")
	ErrCartNotFound           = errors.New("cart not found")
	ErrInvalidCartReference   = errors.New("cart uuid is not the same as the cached uuid")
	ErrProductNotInCart       = errors.New("product does not exist in cart")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrConcurrentModification = errors.New("cart was modified concurrently")
	ErrDependencyUnavailable  = errors.New("dependency unavailable")
)
