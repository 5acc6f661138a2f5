// internal/cache/cache.go

// Package cache holds serialized public list responses so that repeated
// page loads do not hit the database. Writes to an entity invalidate its keys.
package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sportsfed/fedsite/internal/config"
)

// Cache must be safe for concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const ErrCacheMiss Error = "cache miss"

// New returns a Redis cache when REDIS_URL is configured and reachable,
// otherwise an in-process memory cache.
func New(ctx context.Context, cfg config.RedisConfig) Cache {
	if cfg.URL == "" {
		return NewMemoryCache(cfg.TTL())
	}

	rc, err := NewRedisCache(ctx, RedisOptions{URL: cfg.URL, Prefix: cfg.Prefix, DefaultTTL: cfg.TTL()})
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, falling back to memory cache")
		return NewMemoryCache(cfg.TTL())
	}
	return rc
}
