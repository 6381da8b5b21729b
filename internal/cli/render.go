package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// renderCommand creates the render command, which lays out the DOT document
// with Graphviz and writes one file per format.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      dotFlags
		formatsStr string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a transition map to SVG, PNG or PDF",
		Long: `Generate the DOT document for a transition map and lay it out with Graphviz.

One file is written per format, named after the output base path (or the
input file). Rendered artifacts are cached by DOT content; the cache lives in
$XDG_CACHE_HOME/hsmgraph unless cache.url or HSMGRAPH_CACHE_URL points
elsewhere. PDF output needs rsvg-convert on PATH.`,
		Example: `  hsmgraph render machine.txt
  hsmgraph render machine.txt -f svg,png -o out/machine
  hsmgraph render machine.txt -f png -o - > machine.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			if output == stdinPath && len(formats) != 1 {
				return fmt.Errorf("-o - needs exactly one format, got %d", len(formats))
			}

			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}

			input := inputPath(args)
			m, err := c.readMap(cmd, input)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := flags.options(cmd, cfg)
			opts.Formats = formats

			spinner := newRenderSpinner(runner.Hooks, formats)
			runner.Hooks = spinner
			spinner.start(cmd.Context())
			res, err := runner.Execute(cmd.Context(), m, opts)
			spinner.stop()
			if err != nil {
				printInvalidTopology(err)
				return err
			}

			if output == stdinPath {
				_, err := cmd.OutOrStdout().Write(res.Artifacts[formats[0]])
				return err
			}

			base := basePath(output, input)
			if dir := filepath.Dir(base); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}

			paths := make([]string, 0, len(formats))
			for _, format := range formats {
				path := base + "." + format
				if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				c.Logger.Debugf("Wrote %s (%d bytes)", path, len(res.Artifacts[format]))
				paths = append(paths, path)
			}

			printSuccess("Rendered %s", strings.Join(formats, ", "))
			printRenderStats(res.Stats, res.CacheInfo.RenderHit)
			for _, p := range paths {
				printFile(p)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output formats: svg, png, pdf, dot (comma-separated, default svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path, or - for stdout (default: input file name)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == stdinPath {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
