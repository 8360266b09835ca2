package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mconrado/fast-ecommerce-back/models"
)

// CartCache stores one serialized cart per key in redis. Saves are
// optimistic: the stored version must still equal the version the caller
// loaded, otherwise another writer got there first and the save fails with
// ErrConcurrentModification instead of silently losing its update.
type CartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartCache wraps a redis client. A zero ttl keeps carts forever; expiry
// policy belongs to the cache, not the cart engine.
func NewCartCache(client *redis.Client, ttl time.Duration) *CartCache {
	return &CartCache{client: client, ttl: ttl}
}

func cartKey(cartUUID uuid.UUID) string {
	return "cart:" + cartUUID.String()
}

func (c *CartCache) Load(ctx context.Context, cartUUID uuid.UUID) (*models.Cart, error) {
	raw, err := c.client.Get(ctx, cartKey(cartUUID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrCartNotFound
		}
		return nil, depErr("get cart", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

func (c *CartCache) Save(ctx context.Context, cart *models.Cart) error {
	key := cartKey(cart.UUID)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return depErr("get cart", err)
		}

		if err == nil {
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

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, key)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return models.ErrConcurrentModification
		}
		if errors.Is(err, models.ErrConcurrentModification) || errors.Is(err, models.ErrDependencyUnavailable) {
			return err
		}
		return depErr("save cart", err)
	}

	cart.Version++
	return nil
}
