package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
	"github.com/matzehuels/hsmgraph/pkg/io"
	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// stdinPath selects standard input as the transition map source.
const stdinPath = "-"

// readMap loads the transition map named by path. Standard input defaults to
// the text format; files are detected by extension unless --input-format is set.
func (c *CLI) readMap(cmd *cobra.Command, path string) (*hsm.Map, error) {
	var format io.Format
	if c.inputFormat != "" {
		f, err := io.ParseFormat(c.inputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var (
		m   *hsm.Map
		err error
	)
	if path == stdinPath {
		if format == "" {
			format = io.FormatText
		}
		m, err = io.Read(cmd.InOrStdin(), format)
	} else {
		m, err = io.ImportFile(path, format)
	}
	if err != nil {
		return nil, err
	}

	c.Logger.Debugf("Loaded %d transitions from %s", m.Len(), describeInput(path))
	return m, nil
}

// generate reads path and runs it through the pipeline. Topology failures
// are reported with the offending states before the error is returned.
func (c *CLI) generate(cmd *cobra.Command, path string, opts pipeline.Options) (*pipeline.Result, error) {
	m, err := c.readMap(cmd, path)
	if err != nil {
		return nil, err
	}

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	res, err := pipeline.Generate(cmd.Context(), m, opts)
	if err != nil {
		printInvalidTopology(err)
		return nil, err
	}
	prog.done(fmt.Sprintf("Generated %d states in %d groups", res.Stats.States, res.Stats.Groups))
	return res, nil
}

func describeInput(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

// inputPath returns the FILE argument, or stdin when there is none.
func inputPath(args []string) string {
	if len(args) == 0 {
		return stdinPath
	}
	return args[0]
}
