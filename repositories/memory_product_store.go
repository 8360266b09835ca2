package repositories

import (
	"context"
	"sync"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// MemoryProductStore serves products and coupons from maps so the cart
// orchestration can be exercised without a live database.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[int]models.Product
	coupons  map[string]models.Coupon
}

func NewMemoryProductStore(products []models.Product, coupons []models.Coupon) *MemoryProductStore {
	s := &MemoryProductStore{
		products: make(map[int]models.Product, len(products)),
		coupons:  make(map[string]models.Coupon, len(coupons)),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	for _, c := range coupons {
		s.coupons[c.Code] = c
	}
	return s
}

func (s *MemoryProductStore) GetProductByID(ctx context.Context, productID int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[productID]
	if !ok || !product.Active {
		return nil, models.ErrProductNotFound
	}
	return &product, nil
}

// GetProducts returns matches in map iteration order, deliberately not the
// input order.
func (s *MemoryProductStore) GetProducts(ctx context.Context, productIDs []int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	products := []models.Product{}
	for id, p := range s.products {
		if wanted[id] && p.Active {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *MemoryProductStore) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coupon, ok := s.coupons[code]
	if !ok || !coupon.Active {
		return nil, models.ErrCouponNotFound
	}
	return &coupon, nil
}
