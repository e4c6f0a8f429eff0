// Package cache stores AI answers keyed by question and financial context so
// repeated questions skip the remote provider. A Redis backend is used when an
// address is configured, with an in-process TTL map as the default.
package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with a fixed TTL. Implementations never
// fail reads or writes loudly: a miss and a backend error look the same to
// the caller.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Close() error
}

// DefaultTTL is how long cached AI answers stay fresh.
const DefaultTTL = 24 * time.Hour

// New returns a Redis-backed cache when addr is set, otherwise an in-memory
// one. A zero ttl means DefaultTTL.
func New(addr string, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if addr != "" {
		return newRedisCache(addr, ttl)
	}
	return newMemoryCache(ttl)
}
