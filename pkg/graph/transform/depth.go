package transform

import (
	"github.com/matzehuels/hsmgraph/pkg/errors"
	"github.com/matzehuels/hsmgraph/pkg/graph"
)

// DepthCeiling is the depth at which a graph is considered inconsistent.
// Relaxation never raises a node past it.
const DepthCeiling = 1000

// AssignDepths computes every node's depth and returns the number of sweeps
// it took to reach the fixed point.
//
// Existing depths are reset to 0 first, so the result is the smallest
// assignment satisfying all constraints.
//
// If any node ends at [DepthCeiling], AssignDepths returns an
// INVALID_TOPOLOGY [errors.Error] whose cause is an [errors.TopologyError]
// naming every such node. Depths are left as computed in that case and must
// not be used.
func AssignDepths(g *graph.Graph) (int, error) {
	nodes := g.Nodes()
	for _, n := range nodes {
		n.Depth = 0
	}

	sweeps := 0
	for changed := true; changed; {
		sweeps++
		changed = false
		for _, n := range nodes {
			if propagate(n) {
				changed = true
			}
		}
	}

	var offending []string
	for _, n := range nodes {
		if n.Depth >= DepthCeiling {
			offending = append(offending, n.Name)
		}
	}
	if len(offending) > 0 {
		return sweeps, errors.InvalidTopology(offending, DepthCeiling)
	}
	return sweeps, nil
}

// propagate pushes root's depth to its siblings and, transitively, down its
// inner states. It reports whether any depth changed.
func propagate(root *graph.Node) bool {
	changed := false
	stack := []*graph.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, s := range n.Siblings() {
			if s.Depth < n.Depth {
				s.Depth = n.Depth
				changed = true
			}
		}

		want := min(n.Depth+1, DepthCeiling)
		inners := n.Inners()
		// Reverse push so inner states are followed in name order.
		for i := len(inners) - 1; i >= 0; i-- {
			c := inners[i]
			if c.Depth < want {
				c.Depth = want
				changed = true
				stack = append(stack, c)
			}
		}
	}
	return changed
}
