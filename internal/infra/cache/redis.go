package cache

import (
	"context"
	"fmt"
	"time"

	"invoice-admin/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

// ListingCache holds rendered listing payloads keyed by their logical path
// (e.g. "/dashboard/invoices"). Mutations invalidate by path; the next read
// recomputes from the store.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, cfg config.RedisConfig) *ListingCache {
	return &ListingCache{client: client, ttl: cfg.ListingTTL}
}

// GetListing returns the cached payload, or nil without error on a miss.
func (c *ListingCache) GetListing(ctx context.Context, path string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}
	return payload, nil
}

func (c *ListingCache) SetListing(ctx context.Context, path string, payload []byte) error {
	if err := c.client.Set(ctx, c.key(path), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("listing cache set: %w", err)
	}
	return nil
}

// Invalidate marks the listing under path stale by dropping its payload.
func (c *ListingCache) Invalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, c.key(path)).Err(); err != nil {
		return fmt.Errorf("listing cache invalidate: %w", err)
	}
	return nil
}

func (c *ListingCache) key(path string) string {
	return "listing:" + path
}
