package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/io"
)

// mapCommand creates the map command, which prints the normalized transition
// map. Duplicates are dropped and transitions are sorted, so the output is a
// canonical form of the input that can also be converted between formats.
func (c *CLI) mapCommand() *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "map [file]",
		Short: "Print the normalized transition map",
		Long: `Print the transition map in canonical form: duplicates removed and
transitions sorted by source, kind and target.

Reads standard input when no file (or "-") is given.`,
		Example: `  hsmgraph map machine.txt
  hsmgraph map machine.txt --to yaml -o machine.yaml
  cat machine.txt | hsmgraph map`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := io.ParseFormat(to)
			if err != nil {
				return err
			}

			m, err := c.readMap(cmd, inputPath(args))
			if err != nil {
				return err
			}

			if output == "" {
				return io.Write(cmd.OutOrStdout(), m, format)
			}
			if err := io.ExportFile(output, m, format); err != nil {
				return err
			}
			printSuccess("Wrote %d transitions", m.Len())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", string(io.FormatText), "output format: text, json, yaml, toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
