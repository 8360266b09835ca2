package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mconrado/fast-ecommerce-back/models"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return depErr("begin tx", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, cart_uuid, subtotal, discount, freight, total,
			coupon, payment_method, payment_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		order.UserID, order.CartUUID, order.Subtotal, order.Discount, order.Freight,
		order.Total, order.Coupon, order.PaymentMethod, order.PaymentID, order.Status,
		now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return depErr("insert order", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, discount_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.Price, item.DiscountPrice,
		).Scan(&item.ID)
		if err != nil {
			return depErr("insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return depErr("commit tx", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID, userID int) (*models.Order, error) {
	var order models.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, cart_uuid, subtotal, discount, freight, total,
			coupon, payment_method, payment_id, status, created_at, updated_at
		FROM orders WHERE id = $1 AND user_id = $2`,
		orderID, userID,
	).Scan(
		&order.ID, &order.UserID, &order.CartUUID, &order.Subtotal, &order.Discount,
		&order.Freight, &order.Total, &order.Coupon, &order.PaymentMethod,
		&order.PaymentID, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, depErr("query order", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price, discount_price
		FROM order_items WHERE order_id = $1 ORDER BY id`,
		order.ID,
	)
	if err != nil {
		return nil, depErr("query order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.Price, &item.DiscountPrice); err != nil {
			return nil, depErr("scan order item", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, depErr("iterate order items", err)
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, cart_uuid, subtotal, discount, freight, total,
			coupon, payment_method, payment_id, status, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, depErr("query orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.CartUUID, &order.Subtotal, &order.Discount,
			&order.Freight, &order.Total, &order.Coupon, &order.PaymentMethod,
			&order.PaymentID, &order.Status, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, depErr("scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, depErr("iterate orders", err)
	}
	return orders, nil
}
