package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dotCommand creates the dot command, which writes the DOT document.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags  dotFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Write the Graphviz DOT document for a transition map",
		Long: `Rank every state of the transition map by nesting depth, group states by
namespace and write the result as a strict Graphviz digraph.

If the map cannot be layered (typically because a state is both a sibling and
an inner of the same states) the offending states are listed and nothing is
written.`,
		Example: `  hsmgraph dot machine.txt | dot -Tsvg > machine.svg
  hsmgraph dot machine.yaml --rankdir LR -o machine.dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}

			input := inputPath(args)
			res, err := c.generate(cmd, input, flags.options(cmd, cfg))
			if err != nil {
				return err
			}

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), res.DOT)
				return err
			}
			if err := os.WriteFile(output, []byte(res.DOT), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Generated DOT")
			printStats(res.Stats)
			printFile(output)
			if input != stdinPath {
				printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
