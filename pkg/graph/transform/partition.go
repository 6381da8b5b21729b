package transform

import (
	"maps"
	"slices"

	"github.com/matzehuels/hsmgraph/pkg/graph"
	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

// Rank is the set of states sharing one namespace and one depth.
type Rank struct {
	Depth  int
	States []string // sorted
}

// Group is every state of one namespace, split by depth.
type Group struct {
	Namespace string
	Parts     []string // namespace segments, outermost first
	MinDepth  int
	MaxDepth  int
	Ranks     []Rank // ascending depth
}

// Len returns the number of states in the group.
func (g Group) Len() int {
	n := 0
	for _, r := range g.Ranks {
		n += len(r.States)
	}
	return n
}

// Partition splits the nodes of g into namespace groups.
//
// Namespaces are drained one at a time: the namespace of the smallest
// remaining state name is taken next, together with every other state in it,
// until no state is left. Within a group ranks ascend by depth and states
// within a rank are sorted by name, so the result is fully deterministic.
func Partition(g *graph.Graph) []Group {
	remaining := g.Nodes()
	var groups []Group

	for len(remaining) > 0 {
		ns := remaining[0].Namespace()

		byDepth := make(map[int][]string)
		rest := remaining[:0:0]
		for _, n := range remaining {
			if n.Namespace() != ns {
				rest = append(rest, n)
				continue
			}
			byDepth[n.Depth] = append(byDepth[n.Depth], n.Name)
		}
		remaining = rest

		depths := slices.Sorted(maps.Keys(byDepth))
		grp := Group{
			Namespace: ns,
			Parts:     hsm.NamespaceParts(ns),
			MinDepth:  depths[0],
			MaxDepth:  depths[len(depths)-1],
			Ranks:     make([]Rank, 0, len(depths)),
		}
		for _, d := range depths {
			states := byDepth[d]
			slices.Sort(states)
			grp.Ranks = append(grp.Ranks, Rank{Depth: d, States: states})
		}
		groups = append(groups, grp)
	}
	return groups
}
