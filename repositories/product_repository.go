package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// ProductRepository resolves products and coupons against postgres. It is
// the authoritative source a pricing pass reconciles cached carts with.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, uri, description, price, discount, active, category_id, sku,
	weight, height, width, length, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.URI, &p.Description, &p.Price, &p.Discount,
		&p.Active, &p.CategoryID, &p.SKU,
		&p.Weight, &p.Height, &p.Width, &p.Length,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, productID int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND active = true`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProductNotFound
		}
		return nil, depErr("query product", err)
	}
	return product, nil
}

// GetProducts returns the active products matching ids. Order is not
// guaranteed to match the input; callers re-index by id.
func (r *ProductRepository) GetProducts(ctx context.Context, productIDs []int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) AND active = true`

	rows, err := r.pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, depErr("query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, depErr("scan product", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, depErr("iterate products", err)
	}
	return products, nil
}

func (r *ProductRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	query := `SELECT code, fee, active FROM coupons WHERE code = $1 AND active = true`

	var coupon models.Coupon
	err := r.pool.QueryRow(ctx, query, code).Scan(&coupon.Code, &coupon.Fee, &coupon.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCouponNotFound
		}
		return nil, depErr("query coupon", err)
	}
	return &coupon, nil
}

func (r *ProductRepository) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE active = true`).Scan(&total); err != nil {
		return nil, 0, depErr("count products", err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE active = true
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, depErr("query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, depErr("scan product", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, depErr("iterate products", err)
	}
	return products, total, nil
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, is_active, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, depErr("query categories", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, depErr("scan category", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, depErr("iterate categories", err)
	}
	return categories, nil
}
