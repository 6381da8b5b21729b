// Package cli implements the hsmgraph command-line interface.
//
// The commands read a transition map from a file or stdin, run it through
// pipeline.Generate and print or save the result. The CLI is built on cobra
// and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - map: Print the normalized transition map, optionally in another format
//   - dot: Write the Graphviz DOT document
//   - depths: Show every state with its depth and namespace
//   - browse: Explore states and their transitions interactively
//   - render: Lay out the DOT document as SVG, PNG or PDF, with caching
//   - cache: Manage the artifact cache
//
// # Configuration
//
// Defaults for the DOT options and the cache backend are read from
// $XDG_CONFIG_HOME/hsmgraph/config.toml (or --config). Flags override the
// file, and HSMGRAPH_CACHE_URL overrides the cache backend.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Generated 12 states (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
