// Package dot serializes a layered state graph as Graphviz DOT and renders
// DOT to images.
//
// # Usage
//
// Build a [Layout] from the outputs of the transform package and serialize it:
//
//	layout := dot.Layout{
//		Links:  transform.CollapsePingPong(g),
//		Groups: transform.Partition(g),
//	}
//	src := dot.ToDOT(layout, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// # DOT Format
//
// The output is a strict digraph. Edge statements come first, one per
// [transform.Link], styled by transition kind:
//
//   - Inner: solid, weight 1
//   - InnerEntry: bold, weight 1
//   - Sibling: dotted, weight 50; ping-pong pairs add dir="both"
//
// Then, for every namespace group and depth, the states are written inside a
// "rank=same" block nested in one cluster per namespace segment. Clusters are
// repeated for each depth; Graphviz merges clusters with the same identifier.
// Cluster identifiers are built from the full namespace prefix so that equal
// segment names under different parents stay apart.
//
// Node identifiers come from [hsm.NodeID] and labels from
// [hsm.FriendlyName]. Serialization only reads its input.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] run Graphviz in-process through
// [github.com/goccy/go-graphviz]. [RenderPDF] converts the SVG with
// rsvg-convert (librsvg).
package dot
