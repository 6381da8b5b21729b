// Package observability defines hooks for instrumenting graph generation,
// rendering and caching.
//
// Hooks are plain interfaces passed in through options; nothing is registered
// globally. Every interface has a no-op implementation, and [LogHooks]
// reports events to a charmbracelet logger at debug level.
//
//	hooks := observability.NewLogHooks(logger)
//	res, err := pipeline.Generate(ctx, m, pipeline.Options{Hooks: hooks})
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// OnGenerateStart is called before the transition map is validated.
	OnGenerateStart(ctx context.Context, transitions int)
	// OnDepthsAssigned is called after depth assignment, successful or not.
	OnDepthsAssigned(ctx context.Context, states, sweeps int, duration time.Duration, err error)
	// OnGenerateComplete is called once the DOT text is produced or
	// generation failed.
	OnGenerateComplete(ctx context.Context, size int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnDepthsAssigned(context.Context, int, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// LogHooks implements PipelineHooks and CacheHooks by logging each event.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger at debug level. Failures are
// logged at warn level.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnGenerateStart(_ context.Context, transitions int) {
	h.logger.Debug("generate", "transitions", transitions)
}

func (h *LogHooks) OnDepthsAssigned(_ context.Context, states, sweeps int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("depth assignment failed", "states", states, "sweeps", sweeps, "err", err)
		return
	}
	h.logger.Debug("depths assigned", "states", states, "sweeps", sweeps, "duration", d)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, size int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("generated dot", "bytes", size, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = NoopPipelineHooks{}
	_ CacheHooks    = NoopCacheHooks{}
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
