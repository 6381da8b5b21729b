package transform

import (
	"strings"
	"testing"

	"github.com/matzehuels/hsmgraph/pkg/graph"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

// build parses lines of "Src ==>> Dst" into a graph.
func build(t *testing.T, lines ...string) *graph.Graph {
	t.Helper()
	m := hsm.NewMap()
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 {
			t.Fatalf("bad transition line %q", l)
		}
		k, err := hsm.ParseKind(f[1])
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", f[1], err)
		}
		m.Add(hsm.Transition{Source: f[0], Kind: k, Target: f[2]})
	}
	return graph.Build(m)
}
