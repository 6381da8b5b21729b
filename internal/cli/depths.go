package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
	"github.com/matzehuels/hsmgraph/pkg/palette"
	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// stateRow is one state in partition order.
type stateRow struct {
	Namespace string
	Depth     int
	State     string
	Label     string
	Color     palette.HSV
}

// stateRows flattens the partition of res: groups in output order, ranks by
// ascending depth, states sorted within a rank.
func stateRows(res *pipeline.Result) []stateRow {
	var rows []stateRow
	for _, g := range res.Groups {
		for _, r := range g.Ranks {
			for _, s := range r.States {
				rows = append(rows, stateRow{
					Namespace: g.Namespace,
					Depth:     r.Depth,
					State:     s,
					Label:     hsm.FriendlyName(s),
					Color:     res.Colors[s],
				})
			}
		}
	}
	return rows
}

// depthsCommand creates the depths command, which lists every state with
// its namespace and depth.
func (c *CLI) depthsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "depths [file]",
		Short: "List every state with its namespace and depth",
		Example: `  hsmgraph depths machine.txt
  hsmgraph depths machine.txt --plain | sort -n`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}

			res, err := c.generate(cmd, inputPath(args), cfg.pipelineOptions())
			if err != nil {
				return err
			}

			rows := stateRows(res)
			if plain {
				for _, r := range rows {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.Depth, r.State)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), depthTable(rows))
			printStats(res.Stats)
			printDetail("max depth %d, settled after %d sweeps", res.Stats.MaxDepth, res.Stats.Sweeps)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated depth and state only")

	return cmd
}

// depthTable renders rows as a bordered table with a color swatch per state.
func depthTable(rows []stateRow) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		ns := r.Namespace
		if ns == "" {
			ns = "—"
		}
		cells[i] = []string{ns, strconv.Itoa(r.Depth), r.State, "██"}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Namespace", "Depth", "State", "").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 1:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case 3:
				if row < len(rows) {
					return base.Foreground(lipgloss.Color(rows[row].Color.Hex()))
				}
			}
			return base
		}).
		Render()
}
