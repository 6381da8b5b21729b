package cache

import (
	"context"
	"time"

	"github.com/matzehuels/hsmgraph/pkg/observability"
)

// Instrumented reports hits, misses and writes of an inner cache to hooks.
type Instrumented struct {
	Cache
	hooks   observability.CacheHooks
	keyType string
}

// WithHooks wraps c so every Get and Set is reported to hooks under keyType.
// A nil hooks value returns c unchanged.
func WithHooks(c Cache, hooks observability.CacheHooks, keyType string) Cache {
	if hooks == nil {
		return c
	}
	return &Instrumented{Cache: c, hooks: hooks, keyType: keyType}
}

// Get forwards to the inner cache and reports the outcome.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			c.hooks.OnCacheHit(ctx, c.keyType)
		} else {
			c.hooks.OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, hit, err
}

// Set forwards to the inner cache and reports successful writes.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	c.hooks.OnCacheSet(ctx, c.keyType, len(data))
	return nil
}
