package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hsmgraph/pkg/cache"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
	"github.com/matzehuels/hsmgraph/pkg/observability"
)

// Runner generates and renders with an artifact cache.
//
// The Runner holds no per-run state, so one Runner may serve concurrent
// calls as long as its cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
	Hooks  observability.PipelineHooks
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger logs nowhere.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	r := &Runner{Cache: c, Logger: logger, TTL: cache.TTLArtifact}
	r.applyDefaults(&Options{})
	return r
}

// Execute runs [Generate] and renders the result in opts.Formats.
func (r *Runner) Execute(ctx context.Context, m *hsm.Map, opts Options) (*Result, error) {
	r.applyDefaults(&opts)

	res, err := Generate(ctx, m, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, res.DOT, opts.Formats)
	if err != nil {
		return nil, err
	}
	res.Artifacts = artifacts
	res.Stats.RenderTime = time.Since(start)
	res.CacheInfo.RenderHit = hit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", res.Stats.RenderTime)
	return res, nil
}

// RenderWithCacheInfo renders src in every format, serving formats from the
// cache where possible. It reports whether every artifact was cached.
// FormatDOT is never cached. Once ctx is done no further format is rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, src string, formats []string) (map[string][]byte, bool, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(formats))
	allCached := true

	for _, format := range formats {
		if format == FormatDOT {
			artifacts[format] = []byte(src)
			continue
		}

		key := cache.ArtifactKey(src, format)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			continue
		} else if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		allCached = false

		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		start := time.Now()
		r.Hooks.OnRenderStart(ctx, format)
		data, err := Render(ctx, src, format)
		r.Hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		}
	}

	return artifacts, allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, src string, formats []string) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, src, formats)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyDefaults fills the runner's logger and hooks, and hands them to opts
// when it has none of its own.
func (r *Runner) applyDefaults(opts *Options) {
	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if r.Hooks == nil {
		r.Hooks = observability.NoopPipelineHooks{}
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if opts.Hooks == nil {
		opts.Hooks = r.Hooks
	}
}
