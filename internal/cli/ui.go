package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hsmgraph/pkg/errors"
	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
	"github.com/matzehuels/hsmgraph/pkg/pipeline"
)

// =============================================================================
// Colors & Styles
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // headings, depths
	colorGreen = lipgloss.Color("35")  // success, cache hits
	colorRed   = lipgloss.Color("167") // errors, offending states
	colorBlue  = lipgloss.Color("75")  // suggested commands
	colorWhite = lipgloss.Color("255") // state names, paths
	colorGray  = lipgloss.Color("245") // table headers
	colorDim   = lipgloss.Color("240") // borders, details
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleOffending = lipgloss.NewStyle().Foreground(colorRed)
	styleCommand   = lipgloss.NewStyle().Foreground(colorBlue)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh  = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess  = "✓"
	iconError    = "✗"
	iconArrow    = "→"
	iconPingPong = "↔"
	iconCached   = "cached"
	iconFresh    = "fresh"
)

// statusOut receives status lines. Command results go to the command's own
// output writer.
var statusOut io.Writer = os.Stderr

// =============================================================================
// Status Lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(statusOut, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(statusOut, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(statusOut, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Layout Summaries
// =============================================================================

// statsParts summarizes a generated layout, e.g.
// "3 states · 2 links (1 ping-pong) · 1 group · depth 0-1".
func statsParts(s pipeline.Stats) []string {
	links := plural(s.Links, "link")
	if s.PingPongs > 0 {
		links += fmt.Sprintf(" (%s)", plural(s.PingPongs, "ping-pong"))
	}
	return []string{
		plural(s.States, "state"),
		links,
		plural(s.Groups, "group"),
		fmt.Sprintf("depth 0-%d", s.MaxDepth),
	}
}

// printStats prints the layout summary on one line.
func printStats(s pipeline.Stats) {
	printParts(statsParts(s))
}

// printRenderStats prints the layout summary followed by the cache status.
func printRenderStats(s pipeline.Stats, cached bool) {
	status := styleFresh.Render(iconFresh)
	if cached {
		status = styleCached.Render(iconCached)
	}
	printParts(append(statsParts(s), status))
}

func printParts(parts []string) {
	dimmed := make([]string, len(parts))
	for i, p := range parts {
		dimmed[i] = styleDim.Render(p)
	}
	fmt.Fprintln(statusOut, "  "+strings.Join(dimmed, styleDim.Render(" · ")))
}

// printInvalidTopology lists the states that kept the depths from settling.
// Errors of any other kind print nothing.
func printInvalidTopology(err error) {
	states := errors.OffendingStates(err)
	if len(states) == 0 {
		return
	}
	printError("%s", errors.UserMessage(err))
	for _, s := range states {
		fmt.Fprintln(statusOut, "  "+styleOffending.Render(s))
	}
	printDetail("%s reached depth %d", plural(len(states), "state"), transform.DepthCeiling)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
