package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// Config is the on-disk configuration.
//
//	[dot]
//	font = "Helvetica"
//	nodesep = 0.6
//	rankdir = "LR"
//	color = true
//	hex_colors = false
//
//	[cache]
//	url = "redis://localhost:6379/0"
//	ttl = "72h"
type Config struct {
	DOT   DOTConfig   `toml:"dot"`
	Cache CacheConfig `toml:"cache"`
}

// DOTConfig holds serializer defaults.
type DOTConfig struct {
	Font      string  `toml:"font"`
	NodeSep   float64 `toml:"nodesep"`
	RankDir   string  `toml:"rankdir"`
	Color     *bool   `toml:"color"` // nil keeps colors on
	HexColors bool    `toml:"hex_colors"`
}

// CacheConfig selects the artifact cache.
type CacheConfig struct {
	URL string        `toml:"url"` // "", "file", "none" or redis://...
	TTL time.Duration `toml:"ttl"`
}

// loadConfig reads the config file at path. With an empty path the default
// location is tried, and a missing default file yields the zero Config.
// HSMGRAPH_CACHE_URL overrides cache.url.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, configFile)
		}
	}

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
			}
		case !explicit && errors.Is(err, fs.ErrNotExist):
			// no config file
		default:
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if url := os.Getenv(envCacheURL); url != "" {
		cfg.Cache.URL = url
	}
	return cfg, nil
}

// pipelineOptions converts the file defaults into pipeline options.
func (c Config) pipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		FontName:  c.DOT.Font,
		NodeSep:   c.DOT.NodeSep,
		RankDir:   c.DOT.RankDir,
		HexColors: c.DOT.HexColors,
	}
	if c.DOT.Color != nil {
		opts.NoColor = !*c.DOT.Color
	}
	return opts
}

// =============================================================================
// DOT Flags
// =============================================================================

// dotFlags are the serializer flags shared by dot, render and browse.
type dotFlags struct {
	font      string
	nodeSep   float64
	rankDir   string
	noColor   bool
	hexColors bool
}

func (f *dotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.font, "font", "", "graph font name (default Helvetica)")
	cmd.Flags().Float64Var(&f.nodeSep, "nodesep", 0, "minimum space between nodes in inches (default 0.6)")
	cmd.Flags().StringVar(&f.rankDir, "rankdir", "", "layout direction: TB, LR, BT, RL (default TB)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "omit node fill colors")
	cmd.Flags().BoolVar(&f.hexColors, "hex-colors", false, "write node colors as #rrggbb instead of HSV")
}

// options merges the config file defaults with any flags the user set.
func (f *dotFlags) options(cmd *cobra.Command, cfg Config) pipeline.Options {
	opts := cfg.pipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("font") {
		opts.FontName = f.font
	}
	if flags.Changed("nodesep") {
		opts.NodeSep = f.nodeSep
	}
	if flags.Changed("rankdir") {
		opts.RankDir = f.rankDir
	}
	if flags.Changed("no-color") {
		opts.NoColor = f.noColor
	}
	if flags.Changed("hex-colors") {
		opts.HexColors = f.hexColors
	}
	return opts
}
