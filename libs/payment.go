package libs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// MemoryPaymentGateway stands in for the real payment provider. The charge
// always succeeds and returns a synthetic transaction id.
type MemoryPaymentGateway struct{}

func NewMemoryPaymentGateway() *MemoryPaymentGateway {
	return &MemoryPaymentGateway{}
}

func (g *MemoryPaymentGateway) Charge(ctx context.Context, order *models.Order) (string, error) {
	if order.Total.IsNegative() {
		return "", fmt.Errorf("charge amount is negative")
	}
	return "pay_" + uuid.NewString(), nil
}
