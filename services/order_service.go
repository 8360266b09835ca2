package services

import (
	"context"
	"fmt"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// PaymentGateway charges the order total and returns the provider's
// transaction id. The concrete provider integration lives outside the cart
// engine.
type PaymentGateway interface {
	Charge(ctx context.Context, order *models.Order) (string, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID, userID int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
}

type OrderService struct {
	carts   *CartService
	orders  OrderStore
	payment PaymentGateway
}

func NewOrderService(carts *CartService, orders OrderStore, payment PaymentGateway) *OrderService {
	return &OrderService{
		carts:   carts,
		orders:  orders,
		payment: payment,
	}
}

// Checkout reprices the cart against authoritative data, charges
// subtotal - discount + freight and persists the order snapshot. Stale
// client-side totals are never charged.
func (s *OrderService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Order, error) {
	cart, err := s.carts.RefreshCart(ctx, req.CartUUID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:        userID,
		CartUUID:      cart.UUID,
		Subtotal:      cart.Subtotal,
		Discount:      cart.Discount,
		Freight:       cart.Freight,
		Total:         cart.Total(),
		Coupon:        cart.Coupon,
		PaymentMethod: req.PaymentMethod,
		Status:        "pending",
	}
	for _, item := range cart.CartItems {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			Price:         *item.Price,
			DiscountPrice: item.DiscountPrice,
		})
	}

	paymentID, err := s.payment.Charge(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w: %w", models.ErrDependencyUnavailable, err)
	}
	order.PaymentID = &paymentID
	order.Status = "paid"

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, userID int) (*models.Order, error) {
	return s.orders.GetByID(ctx, orderID, userID)
}

func (s *OrderService) ListOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
