package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key the Redis cache writes.
const DefaultRedisPrefix = "hsmgraph:"

// RedisCache keeps entries in Redis under a key prefix.
type RedisCache struct {
	client *backend.Client
	prefix string
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithPrefix sets the key prefix. Clear only removes keys under it.
func WithPrefix(prefix string) RedisOption {
	return func(c *RedisCache) {
		c.prefix = prefix
	}
}

// NewRedisCache connects to the Redis instance at url
// (redis://[user:pass@]host:port/db).
func NewRedisCache(url string, opts ...RedisOption) (*RedisCache, error) {
	o, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisCacheFromClient(backend.NewClient(o), opts...), nil
}

// NewRedisCacheFromClient wraps an existing client. Close closes it.
func NewRedisCacheFromClient(client *backend.Client, opts ...RedisOption) *RedisCache {
	c := &RedisCache{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) key(k string) string { return c.prefix + k }

// Get retrieves a value.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

// Set stores a value. Redis expires it after ttl.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a value.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
