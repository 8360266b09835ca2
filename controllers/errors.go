package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// statusFor maps the domain error taxonomy onto HTTP statuses. Dependency
// failures answer 503 so clients can tell "retry later" from "fix your
// request".
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCartNotFound),
		errors.Is(err, models.ErrProductNotInCart):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCartReference),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrPricingDataMissing),
		errors.Is(err, models.ErrCouponNotFound):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrCartInconsistency),
		errors.Is(err, models.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, models.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: err.Error(),
	})
}
