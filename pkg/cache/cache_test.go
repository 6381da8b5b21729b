package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behavior every backend shares.
func runContract(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Hour))
	require.NoError(t, c.Set(ctx, "k2", []byte("v2"), 0))

	data, hit, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("v1"), data)

	require.NoError(t, c.Delete(ctx, "k1"))
	require.NoError(t, c.Delete(ctx, "k1"), "deleting a missing key")
	_, hit, _ = c.Get(ctx, "k1")
	assert.False(t, hit)

	require.NoError(t, c.Clear(ctx))
	_, hit, _ = c.Get(ctx, "k2")
	assert.False(t, hit, "entry survived Clear")
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()
	runContract(t, c)
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, c.path("k"))
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	path := c.path("k")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFileCache_ClearKeepsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	require.NoError(t, c.Clear(context.Background()))
	assert.DirExists(t, dir)
	assert.Equal(t, dir, c.Dir())
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return mr, client
}

func TestRedisCache(t *testing.T) {
	_, client := newMiniredis(t)
	c := NewRedisCacheFromClient(client)
	defer c.Close()
	runContract(t, c)
}

func TestRedisCache_TTLAndPrefix(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredis(t)
	c := NewRedisCacheFromClient(client, WithPrefix("test:"))

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.True(t, mr.Exists("test:k"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_ClearOnlyOwnKeys(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredis(t)
	c := NewRedisCacheFromClient(client)

	require.NoError(t, mr.Set("other:key", "keep"))
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), 0))
	}

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, []string{"other:key"}, mr.Keys())
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := NewRedisCacheFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr(), MaxRetries: -1}))
	defer c.Close()
	mr.Close()

	_, _, err = c.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "key"))
	assert.NoError(t, c.Clear(ctx))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open("", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileCache{}, c)

	c, err = Open("none", dir)
	require.NoError(t, err)
	assert.IsType(t, &NullCache{}, c)

	mr := miniredis.RunT(t)
	c, err = Open("redis://"+mr.Addr()+"/0", dir)
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, c)
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"k"))
	require.NoError(t, c.Close())

	_, err = Open("memcached://localhost", dir)
	assert.Error(t, err)
}

func TestArtifactKey(t *testing.T) {
	k1 := ArtifactKey("strict digraph G {}", "svg")
	assert.Equal(t, k1, ArtifactKey("strict digraph G {}", "svg"))
	assert.NotEqual(t, k1, ArtifactKey("strict digraph G {}", "png"))
	assert.NotEqual(t, k1, ArtifactKey("strict digraph H {}", "svg"))
	assert.Regexp(t, `^artifact:[0-9a-f]{64}$`, k1)
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	assert.Equal(t, h1, Hash([]byte("hello")))
	assert.NotEqual(t, h1, Hash([]byte("world")))
	assert.Len(t, h1, 64)
}

type countingHooks struct{ hits, misses, sets, bytes int }

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *countingHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.sets++
	h.bytes += size
}

func TestWithHooks(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	hooks := &countingHooks{}
	c := WithHooks(inner, hooks, "artifact")

	_, _, _ = c.Get(ctx, "k")
	require.NoError(t, c.Set(ctx, "k", []byte("abc"), 0))
	_, _, _ = c.Get(ctx, "k")

	assert.Equal(t, countingHooks{hits: 1, misses: 1, sets: 1, bytes: 3}, *hooks)
	assert.Same(t, inner, WithHooks(inner, nil, "artifact"))
}
