// Package pipeline runs the whole transition map to DOT pipeline.
//
// # Stages
//
//  1. Validate: every state name and transition kind is checked
//  2. Build: the transition map becomes a [graph.Graph]
//  3. Depths: [transform.AssignDepths] ranks every state, or fails with
//     INVALID_TOPOLOGY
//  4. Layout: ping-pong collapse, namespace partition and colors
//  5. Serialize: [dot.ToDOT]
//
// [Generate] runs these stages synchronously and either returns the complete
// DOT text or an error; there is never partial output. A [Runner]
// additionally renders the DOT text to images and caches the results.
//
// # Usage
//
//	res, err := pipeline.Generate(ctx, m, pipeline.Options{Logger: logger})
//	if err != nil {
//	    if states := errors.OffendingStates(err); states != nil {
//	        // report the states and stop
//	    }
//	    return err
//	}
//	fmt.Print(res.DOT)
package pipeline

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hsmgraph/pkg/errors"
	"github.com/matzehuels/hsmgraph/pkg/graph"
	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
	"github.com/matzehuels/hsmgraph/pkg/observability"
	"github.com/matzehuels/hsmgraph/pkg/palette"
	"github.com/matzehuels/hsmgraph/pkg/render/dot"
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidRankDirs is the set of supported layout directions.
var ValidRankDirs = map[string]bool{
	"TB": true,
	"LR": true,
	"BT": true,
	"RL": true,
}

// Options configures generation and rendering.
type Options struct {
	// DOT options
	FontName  string  `json:"font,omitempty"`
	NodeSep   float64 `json:"nodesep,omitempty"`
	RankDir   string  `json:"rankdir,omitempty"`
	NoColor   bool    `json:"no_color,omitempty"`
	HexColors bool    `json:"hex_colors,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger                 `json:"-"`
	Hooks  observability.PipelineHooks `json:"-"`
}

// Result holds everything a successful run produced.
type Result struct {
	// DOT is the serialized graph.
	DOT string

	// Graph carries the assigned depths.
	Graph *graph.Graph

	// Links are the edge statements, after ping-pong collapse.
	Links []transform.Link

	// Groups is the namespace partition in output order.
	Groups []transform.Group

	// Colors maps each state to its node color.
	Colors map[string]palette.HSV

	// Artifacts holds rendered outputs keyed by format. Only set by [Runner].
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Transitions int
	States      int
	Links       int
	PingPongs   int
	Groups      int
	MaxDepth    int
	Sweeps      int
	DepthTime   time.Duration
	TotalTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks whether rendered artifacts came from the cache.
type CacheInfo struct {
	RenderHit bool // every requested artifact was cached
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(sortedKeys(ValidFormats), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRankDir checks a layout direction. The empty string is valid and
// means top to bottom.
func ValidateRankDir(rankDir string) error {
	if rankDir != "" && !ValidRankDirs[strings.ToUpper(rankDir)] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid rankdir: %q (must be one of: TB, LR, BT, RL)", rankDir)
	}
	return nil
}

// SetDefaults fills unset options. It is idempotent.
func (o *Options) SetDefaults() {
	if o.FontName == "" {
		o.FontName = dot.DefaultFontName
	}
	if o.NodeSep == 0 {
		o.NodeSep = dot.DefaultNodeSep
	}
	if o.RankDir == "" {
		o.RankDir = "TB"
	}
	o.RankDir = strings.ToUpper(o.RankDir)
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Hooks == nil {
		o.Hooks = observability.NoopPipelineHooks{}
	}
}

// Validate checks option values. Call SetDefaults first.
func (o *Options) Validate() error {
	if o.NodeSep < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "nodesep must not be negative, got %g", o.NodeSep)
	}
	if err := ValidateRankDir(o.RankDir); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// DOTOptions returns the serializer options.
func (o Options) DOTOptions() dot.Options {
	return dot.Options{
		FontName:  o.FontName,
		NodeSep:   o.NodeSep,
		RankDir:   o.RankDir,
		NoColor:   o.NoColor,
		HexColors: o.HexColors,
	}
}

// Generate turns m into DOT text.
//
// Invalid names fail with MALFORMED_NAME and invalid kinds with INVALID_KIND
// before any graph is built. A topology that cannot be layered fails with
// INVALID_TOPOLOGY; [errors.OffendingStates] lists the states at fault.
// On error the result is nil.
func Generate(ctx context.Context, m *hsm.Map, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger, hooks := opts.Logger, opts.Hooks

	start := time.Now()
	transitions := m.Transitions()
	hooks.OnGenerateStart(ctx, len(transitions))

	res, err := generate(ctx, transitions, opts)
	if err != nil {
		hooks.OnGenerateComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	res.Stats.TotalTime = time.Since(start)
	hooks.OnGenerateComplete(ctx, len(res.DOT), res.Stats.TotalTime, nil)

	logger.Debug("generated graph",
		"states", res.Stats.States,
		"links", res.Stats.Links,
		"groups", res.Stats.Groups,
		"duration", res.Stats.TotalTime)
	return res, nil
}

func generate(ctx context.Context, transitions []hsm.Transition, opts Options) (*Result, error) {
	logger, hooks := opts.Logger, opts.Hooks

	if err := errors.ValidateTransitions(transitions); err != nil {
		return nil, err
	}

	g := graph.New()
	for _, t := range transitions {
		g.AddTransition(t)
	}
	logger.Debug("built graph", "states", g.NodeCount(), "transitions", g.EdgeCount())

	depthStart := time.Now()
	sweeps, err := transform.AssignDepths(g)
	depthTime := time.Since(depthStart)
	hooks.OnDepthsAssigned(ctx, g.NodeCount(), sweeps, depthTime, err)
	if err != nil {
		logger.Warn("invalid topology", "states", errors.OffendingStates(err))
		return nil, err
	}
	logger.Debug("assigned depths", "sweeps", sweeps, "max_depth", g.MaxDepth())

	links := transform.CollapsePingPong(g)
	groups := transform.Partition(g)
	colors := palette.Assign(groups)
	logger.Debug("partitioned", "groups", len(groups), "links", len(links))

	src := dot.ToDOT(dot.Layout{Links: links, Groups: groups, Colors: colors}, opts.DOTOptions())

	return &Result{
		DOT:    src,
		Graph:  g,
		Links:  links,
		Groups: groups,
		Colors: colors,
		Stats: Stats{
			Transitions: len(transitions),
			States:      g.NodeCount(),
			Links:       len(links),
			PingPongs:   len(transform.PingPongPairs(links)),
			Groups:      len(groups),
			MaxDepth:    g.MaxDepth(),
			Sweeps:      sweeps,
			DepthTime:   depthTime,
		},
	}, nil
}

func sortedKeys(m map[string]bool) []string {
	return slices.Sorted(maps.Keys(m))
}
