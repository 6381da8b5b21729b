package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/buildinfo"
	"github.com/matzehuels/hsmgraph/pkg/cache"
	"github.com/matzehuels/hsmgraph/pkg/observability"
	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "hsmgraph"

	// configFile is the file name looked up in the config directory.
	configFile = "config.toml"

	// envCacheURL overrides the configured cache backend.
	envCacheURL = "HSMGRAPH_CACHE_URL"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string // --config
	inputFormat string // --input-format
	verbose     bool   // --verbose
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "hsmgraph lays out hierarchical state machine transition maps",
		Long: `hsmgraph reads a transition map of a hierarchical state machine, ranks every
state by nesting depth, groups states into namespace clusters and writes a
Graphviz DOT document (or a rendered SVG, PNG or PDF) of the result.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hsmgraph/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.inputFormat, "input-format", "", "input format: text, json, yaml, toml (default: from file extension)")

	root.AddCommand(c.mapCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.depthsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(cfg Config, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(cfg, noCache)
	if err != nil {
		return nil, err
	}
	hooks := observability.NewLogHooks(c.Logger)

	r := pipeline.NewRunner(cache.WithHooks(store, hooks, "artifact"), c.Logger)
	r.Hooks = hooks
	if cfg.Cache.TTL > 0 {
		r.TTL = cfg.Cache.TTL
	}
	return r, nil
}

func (c *CLI) newCache(cfg Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil && isFileCache(cfg.Cache.URL) {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(cfg.Cache.URL, dir)
}

func isFileCache(url string) bool {
	return url == "" || url == "file"
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/hsmgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/hsmgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
