// Package transform derives layering information from a state graph.
//
// # Depth Assignment
//
// [AssignDepths] gives every node a rank such that
//
//   - a Sibling transition a→b implies depth(b) >= depth(a)
//   - an Inner or InnerEntry transition a→b implies depth(b) >= depth(a)+1
//
// It relaxes these constraints to a fixed point: each sweep visits every
// node, raises its siblings to its own depth and its inner states to one
// below, and follows raised inner states immediately with an explicit stack.
// Sweeps repeat until nothing moves. Depths only ever grow, and they are
// capped at [DepthCeiling]; any node that reaches the cap makes the topology
// invalid (an inner cycle, or a state that is both a sibling and an inner of
// the same states) and AssignDepths reports all such nodes.
//
// # Ping-Pong Collapse
//
// [CollapsePingPong] reduces the graph's transitions to one [Link] per
// ordered state pair, and merges sibling pairs that point at each other into a
// single bidirectional link. Only direct reciprocity counts: a sibling cycle
// A→B→C→A stays three separate links.
//
// # Namespace Partition
//
// [Partition] groups states by namespace, then by depth within a namespace,
// in a deterministic order suitable for serialization.
package transform
