package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// MemoryCartCache keeps serialized carts in a map, with the same optimistic
// version check as the redis cache. Used by tests and local development.
type MemoryCartCache struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryCartCache() *MemoryCartCache {
	return &MemoryCartCache{carts: make(map[string][]byte)}
}

func (c *MemoryCartCache) Load(ctx context.Context, cartUUID uuid.UUID) (*models.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.carts[cartKey(cartUUID)]
	if !ok {
		return nil, models.ErrCartNotFound
	}

	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

func (c *MemoryCartCache) Save(ctx context.Context, cart *models.Cart) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cartKey(cart.UUID)
	if raw, ok := c.carts[key]; ok {
		var stored models.Cart
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("unmarshal cart: %w", err)
		}
		if stored.Version != cart.Version {
			return models.ErrConcurrentModification
		}
	}

	next := *cart
	next.Version++
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	c.carts[key] = data
	cart.Version++
	return nil
}
