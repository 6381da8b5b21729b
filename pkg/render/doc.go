// Package render holds format conversion shared by the renderers.
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool from
// librsvg. The DOT serializer and the Graphviz renderers live in the
// [dot] subpackage.
//
// [dot]: github.com/matzehuels/hsmgraph/pkg/render/dot
package render
