package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsmgraph/pkg/graph"
	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive state explorer.
func (c *CLI) browseCommand() *cobra.Command {
	var flags dotFlags

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore states, depths and transitions interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinPath {
				return fmt.Errorf("browse needs a file; standard input is used for keys")
			}

			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			res, err := c.generate(cmd, args[0], flags.options(cmd, cfg))
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewStateListModel(res), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

// =============================================================================
// StateListModel - Interactive state browser
// =============================================================================

// StateListModel is the bubbletea model for browsing a generated layout.
type StateListModel struct {
	Rows   []stateRow
	Graph  *graph.Graph
	Cursor int
	Height int
	Offset int
	Detail bool // show transitions of the state under the cursor

	pingPongs map[[2]string]bool // pairs drawn with a two-headed edge
}

// NewStateListModel creates a browser over the states of res.
func NewStateListModel(res *pipeline.Result) StateListModel {
	pingPongs := make(map[[2]string]bool)
	for _, p := range transform.PingPongPairs(res.Links) {
		pingPongs[p] = true
	}
	return StateListModel{
		Rows:      stateRows(res),
		Graph:     res.Graph,
		Height:    15,
		pingPongs: pingPongs,
	}
}

func (m StateListModel) Init() tea.Cmd {
	return nil
}

func (m StateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Detail {
			m.Height -= 6
		}
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StateListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("States"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ transitions  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no states"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		ns := r.Namespace
		if ns == "" {
			ns = "—"
		}
		rows = append(rows, []string{cursor, ns, strconv.Itoa(r.Depth), r.Label, "██"})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Namespace", "Depth", "State", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			if col == 4 {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Rows[actualIdx].Color.Hex()))
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Detail {
		b.WriteString(m.detailView())
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// detailView lists the outgoing transitions of the state under the cursor.
func (m StateListModel) detailView() string {
	r := m.Rows[m.Cursor]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + styleHighlight.Render(r.State) + "\n")

	if m.Graph == nil {
		return b.String()
	}
	n, ok := m.Graph.Node(r.State)
	if !ok {
		return b.String()
	}

	inners := n.Inners()
	siblings := n.Siblings()
	if len(inners) == 0 && len(siblings) == 0 {
		b.WriteString("  " + listDimStyle.Render("no outgoing transitions") + "\n")
	}
	for _, in := range inners {
		fmt.Fprintf(&b, "  %s %s %s\n", listDimStyle.Render("inner  "), styleDim.Render(iconArrow), in.Name)
	}
	for _, sib := range siblings {
		arrow := iconArrow
		if m.pingPongs[[2]string{min(r.State, sib.Name), max(r.State, sib.Name)}] {
			arrow = iconPingPong
		}
		fmt.Fprintf(&b, "  %s %s %s\n", listDimStyle.Render("sibling"), styleDim.Render(arrow), sib.Name)
	}
	return b.String()
}
