package transform

import (
	"cmp"
	"slices"

	"github.com/matzehuels/hsmgraph/pkg/graph"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

// Link is a single edge statement to emit: one per ordered state pair, or
// one per ping-pong pair when Bidirectional is set.
type Link struct {
	From          string
	To            string
	Kind          hsm.TransitionKind
	Bidirectional bool
}

type pair struct{ from, to string }

// CollapsePingPong returns the links to draw for g's edges, sorted by source
// then target.
//
// Transitions sharing source and target are merged into one link carrying
// the strongest kind (InnerEntry, then Inner, then Sibling). When a pair of
// distinct states has sibling links in both directions, the one whose source
// is the smaller name is kept with Bidirectional set and the other dropped.
func CollapsePingPong(g *graph.Graph) []Link {
	var order []pair
	kinds := make(map[pair]hsm.TransitionKind)
	for _, e := range g.Edges() {
		p := pair{e.From, e.To}
		k, seen := kinds[p]
		if !seen {
			order = append(order, p)
			kinds[p] = e.Kind
			continue
		}
		if rank(e.Kind) > rank(k) {
			kinds[p] = e.Kind
		}
	}

	slices.SortFunc(order, func(a, b pair) int {
		return cmp.Or(cmp.Compare(a.from, b.from), cmp.Compare(a.to, b.to))
	})

	collapsed := make(map[pair]bool)
	links := make([]Link, 0, len(order))
	for _, p := range order {
		l := Link{From: p.from, To: p.to, Kind: kinds[p]}
		if revKind, ok := kinds[pair{p.to, p.from}]; ok && p.from != p.to &&
			l.Kind == hsm.Sibling && revKind == hsm.Sibling {
			key := unordered(p)
			if collapsed[key] {
				continue
			}
			collapsed[key] = true
			l.Bidirectional = true
		}
		links = append(links, l)
	}
	return links
}

// PingPongPairs returns the state pairs drawn as ping-pongs among links
// from CollapsePingPong, smaller name first, in link order.
func PingPongPairs(links []Link) [][2]string {
	var pairs [][2]string
	for _, l := range links {
		if l.Bidirectional {
			pairs = append(pairs, [2]string{l.From, l.To})
		}
	}
	return pairs
}

func unordered(p pair) pair {
	if p.to < p.from {
		return pair{p.to, p.from}
	}
	return p
}

func rank(k hsm.TransitionKind) int {
	switch k {
	case hsm.InnerEntry:
		return 2
	case hsm.Inner:
		return 1
	default:
		return 0
	}
}
