package repositories

import (
	"fmt"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// depErr marks an infrastructure failure so callers can distinguish it from
// domain errors via errors.Is(err, models.ErrDependencyUnavailable).
func depErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrDependencyUnavailable, err)
}
