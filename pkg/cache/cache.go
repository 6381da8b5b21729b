// Package cache stores rendered artifacts so unchanged graphs are not laid
// out twice.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, selected with a redis:// URL
//   - [NullCache]: stores nothing
//
// [Open] picks a backend from a URL. Keys come from [ArtifactKey], which
// hashes the DOT source together with the output format.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached by default.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by the cache.
	Clear(ctx context.Context) error
	// Close releases the backend.
	Close() error
}

// Open returns the cache selected by url:
//
//   - "" or "file": a [FileCache] in dir
//   - "none" or "off": a [NullCache]
//   - "redis://..." or "rediss://...": a [RedisCache]
func Open(url, dir string) (Cache, error) {
	switch {
	case url == "" || url == "file":
		fc, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case url == "none" || url == "off":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		rc, err := NewRedisCache(url)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unsupported cache url %q (want file, none or redis://)", url)
	}
}
