package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-pos/internal/service"
)

// RedisCache backs cart snapshots and payment idempotency markers.
// Markers use SetNX so only one checkout per session can be in flight.
type RedisCache struct {
	Client      *redis.Client
	SnapshotTTL time.Duration
	MarkerTTL   time.Duration
}

func NewRedisCache(client *redis.Client, snapshotTTL, markerTTL time.Duration) *RedisCache {
	return &RedisCache{Client: client, SnapshotTTL: snapshotTTL, MarkerTTL: markerTTL}
}

func (c *RedisCache) SnapshotKey(sessionID string) string {
	return "cart:snapshot:" + sessionID
}

func (c *RedisCache) PaymentMarkerKey(orderKey string) string {
	return "payment:inflight:" + orderKey
}

func (c *RedisCache) SetSnapshot(ctx context.Context, key string, payload []byte) error {
	return c.Client.Set(ctx, key, payload, c.SnapshotTTL).Err()
}

func (c *RedisCache) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return payload, err
}

func (c *RedisCache) AcquireMarker(ctx context.Context, key string) (bool, error) {
	return c.Client.SetNX(ctx, key, "1", c.MarkerTTL).Result()
}

func (c *RedisCache) ReleaseMarker(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

var _ service.SessionCache = (*RedisCache)(nil)
