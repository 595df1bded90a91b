package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached value exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// StatsCache stores computed dashboard aggregates in Redis with a TTL so
// repeated dashboard loads do not refan out to every table.
type StatsCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewStatsCache builds the cache.
func NewStatsCache(r *Redis, ttl time.Duration) *StatsCache {
	return &StatsCache{redis: r, ttl: ttl}
}

// Get unmarshals the cached value for key into dest.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return ErrCacheMiss
	}
	raw, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Set stores value under key for the configured TTL. Failures are returned
// but callers treat the cache as best effort.
func (c *StatsCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Client.Set(ctx, key, raw, c.ttl).Err()
}
