package dot

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
	"github.com/matzehuels/hsmgraph/pkg/palette"
)

// Defaults applied to a zero Options.
const (
	// DefaultFontName is the graph font.
	DefaultFontName = "Helvetica"
	// DefaultNodeSep is the minimum space between nodes on a rank, in inches.
	DefaultNodeSep = 0.6
)

// Options configures DOT output. The zero value gives the default output.
type Options struct {
	// FontName is the graph font. Defaults to Helvetica.
	FontName string
	// NodeSep is the minimum horizontal space between nodes, in inches.
	// Defaults to 0.6.
	NodeSep float64
	// RankDir sets the layout direction. Empty and "TB" leave it to Graphviz
	// (top to bottom); "LR", "BT" and "RL" are written out.
	RankDir string
	// NoColor drops the fill and font colors of nodes.
	NoColor bool
	// HexColors writes node colors as "#rrggbb" instead of an HSV triple.
	HexColors bool
}

func (o Options) withDefaults() Options {
	if o.FontName == "" {
		o.FontName = DefaultFontName
	}
	if o.NodeSep <= 0 {
		o.NodeSep = DefaultNodeSep
	}
	return o
}

// Layout is everything the serializer needs about a graph whose depths have
// been assigned.
type Layout struct {
	Links  []transform.Link
	Groups []transform.Group
	// Colors overrides node colors by state name. States without an entry
	// get [palette.Color] for their group and depth.
	Colors map[string]palette.HSV
}

// ToDOT serializes l. The same layout and options always give the same text.
func ToDOT(l Layout, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("strict digraph G {\n")
	fmt.Fprintf(&buf, "  fontname=%s;\n", quoteID(opts.FontName))
	fmt.Fprintf(&buf, "  nodesep=%s;\n", strconv.FormatFloat(opts.NodeSep, 'f', -1, 64))
	if rd := strings.ToUpper(opts.RankDir); rd != "" && rd != "TB" {
		fmt.Fprintf(&buf, "  rankdir=%s;\n", rd)
	}

	if len(l.Links) > 0 {
		buf.WriteByte('\n')
	}
	for _, e := range l.Links {
		fmt.Fprintf(&buf, "  %s -> %s [%s]\n", hsm.NodeID(e.From), hsm.NodeID(e.To), edgeAttrs(e))
	}

	for _, g := range l.Groups {
		for _, r := range g.Ranks {
			buf.WriteByte('\n')
			writeRank(&buf, g, r, l.Colors, opts)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Write serializes l to w.
func Write(w io.Writer, l Layout, opts Options) error {
	_, err := io.WriteString(w, ToDOT(l, opts))
	return err
}

func writeRank(buf *bytes.Buffer, g transform.Group, r transform.Rank, colors map[string]palette.HSV, opts Options) {
	indent := "  "
	for i, part := range g.Parts {
		id := hsm.NodeID(strings.Join(g.Parts[:i+1], hsm.ScopeSeparator))
		fmt.Fprintf(buf, "%ssubgraph cluster_%s { label=\"%s\"; labeljust=left;\n", indent, id, escape(part))
		indent += "  "
	}

	fmt.Fprintf(buf, "%ssubgraph {\n", indent)
	fmt.Fprintf(buf, "%s  rank=same // depth=%d\n", indent, r.Depth)
	for _, s := range r.States {
		c, ok := colors[s]
		if !ok {
			c = palette.Color(g, r.Depth)
		}
		fmt.Fprintf(buf, "%s  %s [%s]\n", indent, hsm.NodeID(s), nodeAttrs(s, c, opts))
	}
	fmt.Fprintf(buf, "%s}\n", indent)

	for range g.Parts {
		indent = indent[2:]
		fmt.Fprintf(buf, "%s}\n", indent)
	}
}

func edgeAttrs(e transform.Link) string {
	style, weight := "dotted", 50
	switch e.Kind {
	case hsm.Inner:
		style, weight = "solid", 1
	case hsm.InnerEntry:
		style, weight = "bold", 1
	}
	attrs := fmt.Sprintf(`style="%s", weight="%d", color="black"`, style, weight)
	if e.Bidirectional {
		attrs += `, dir="both"`
	}
	return attrs
}

func nodeAttrs(state string, c palette.HSV, opts Options) string {
	attrs := fmt.Sprintf(`label="%s"`, escape(hsm.FriendlyName(state)))
	if opts.NoColor {
		return attrs
	}
	color := c.String()
	if opts.HexColors {
		color = c.Hex()
	}
	return attrs + fmt.Sprintf(`, fontcolor=white, style=filled, color="%s"`, color)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string { return labelEscaper.Replace(s) }

var bareID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func quoteID(s string) string {
	if bareID.MatchString(s) {
		return s
	}
	return `"` + escape(s) + `"`
}
