package graph

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

var (
	// ErrUnknownState is returned by [Graph.SetDepths] when a depth is given
	// for a state that is not in the graph.
	ErrUnknownState = errors.New("unknown state")

	// ErrNegativeDepth is returned by [Graph.SetDepths] for depths below zero.
	ErrNegativeDepth = errors.New("depth must not be negative")
)

// Node is a state in the graph.
//
// The inner and sibling sets hold references to other nodes of the same
// graph; a node owns neither.
type Node struct {
	Name  string // Fully qualified state name
	Depth int    // Nesting rank, 0 until depths are assigned

	inner   map[string]*Node
	sibling map[string]*Node
}

func newNode(name string) *Node {
	return &Node{
		Name:    name,
		inner:   make(map[string]*Node),
		sibling: make(map[string]*Node),
	}
}

// Inners returns the nodes reached through Inner or InnerEntry transitions,
// sorted by name.
func (n *Node) Inners() []*Node { return sortedNodes(n.inner) }

// Siblings returns the nodes reached through Sibling transitions, sorted by
// name.
func (n *Node) Siblings() []*Node { return sortedNodes(n.sibling) }

// HasInner reports whether n has an inner transition to name.
func (n *Node) HasInner(name string) bool {
	_, ok := n.inner[name]
	return ok
}

// HasSibling reports whether n has a sibling transition to name.
func (n *Node) HasSibling(name string) bool {
	_, ok := n.sibling[name]
	return ok
}

// Namespace returns the namespace the node is grouped under.
func (n *Node) Namespace() string { return hsm.Namespace(n.Name) }

// Edge is a transition between two nodes of the graph.
type Edge struct {
	From string
	To   string
	Kind hsm.TransitionKind
}

// Graph is the adjacency structure built from a transition map.
//
// The zero value is not usable; use [New] or [Build].
type Graph struct {
	nodes map[string]*Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Build creates a graph holding every transition of m. Inner and InnerEntry
// transitions populate the inner sets, Sibling transitions the sibling sets.
// The result only depends on the contents of m, never on insertion order.
func Build(m *hsm.Map) *Graph {
	g := New()
	for _, t := range m.Transitions() {
		g.AddTransition(t)
	}
	return g
}

// AddTransition adds t, creating its source and target nodes if needed.
// Transitions of unknown kind still create both nodes but no adjacency.
func (g *Graph) AddTransition(t hsm.Transition) {
	src := g.ensure(t.Source)
	dst := g.ensure(t.Target)

	switch {
	case t.Kind.IsInner():
		src.inner[dst.Name] = dst
	case t.Kind == hsm.Sibling:
		src.sibling[dst.Name] = dst
	default:
		return
	}
	g.edges = append(g.edges, Edge{From: t.Source, To: t.Target, Kind: t.Kind})
}

func (g *Graph) ensure(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := newNode(name)
	g.nodes[name] = n
	return n
}

// Node returns the node with the given name and true, or nil and false.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns all nodes sorted by name. The pointers refer to the graph's
// own nodes.
func (g *Graph) Nodes() []*Node { return sortedNodes(g.nodes) }

// Names returns all state names, sorted.
func (g *Graph) Names() []string { return slices.Sorted(maps.Keys(g.nodes)) }

// Edges returns a copy of the edges in the order they were added.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Depths returns a snapshot of every node's depth keyed by name.
func (g *Graph) Depths() map[string]int {
	depths := make(map[string]int, len(g.nodes))
	for name, n := range g.nodes {
		depths[name] = n.Depth
	}
	return depths
}

// SetDepths overwrites node depths. States missing from depths keep their
// current value. Nothing is changed if any entry is invalid.
func (g *Graph) SetDepths(depths map[string]int) error {
	for name, d := range depths {
		if _, ok := g.nodes[name]; !ok {
			return ErrUnknownState
		}
		if d < 0 {
			return ErrNegativeDepth
		}
	}
	for name, d := range depths {
		g.nodes[name].Depth = d
	}
	return nil
}

// MaxDepth returns the largest depth in the graph, or 0 if it is empty.
func (g *Graph) MaxDepth() int {
	maxDepth := 0
	for _, n := range g.nodes {
		maxDepth = max(maxDepth, n.Depth)
	}
	return maxDepth
}

// IsPingPong reports whether a and b are distinct states with sibling
// transitions in both directions.
func (g *Graph) IsPingPong(a, b string) bool {
	if a == b {
		return false
	}
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	return okA && okB && na.HasSibling(b) && nb.HasSibling(a)
}

func sortedNodes(m map[string]*Node) []*Node {
	return slices.SortedFunc(maps.Values(m), func(a, b *Node) int {
		return cmp.Compare(a.Name, b.Name)
	})
}
