// Package graph builds the state graph that the layering engine works on.
//
// # Overview
//
// [Build] turns an [hsm.Map] into a [Graph]: one [Node] per state name, each
// holding a depth (initially 0) and two reference sets, the states it
// reaches through Inner/InnerEntry transitions and the states it reaches
// through Sibling transitions. Nodes are created the first time a name is
// seen, whether as source or target, so a state that only appears as a
// target still becomes a node without outgoing edges.
//
// The graph also keeps the transitions themselves as [Edge] values, in map
// order, for the serializer.
//
// # Lifecycle
//
// A Graph is built from scratch for every serialization request and thrown
// away afterwards. Depths are filled in by the transform package
// ([transform.AssignDepths]); every other consumer only reads.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Separate graphs built
// from separate maps share nothing and can be processed in parallel.
//
// [transform.AssignDepths]: github.com/matzehuels/hsmgraph/pkg/graph/transform
package graph
