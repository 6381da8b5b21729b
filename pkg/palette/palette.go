// Package palette assigns display colors to states.
//
// Colors are a visual aid only. Every state of a namespace shares one hue,
// derived from a hash of the namespace string, and gets brighter the deeper
// it sits relative to the rest of its namespace group.
package palette

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
)

const (
	// Saturation is shared by every color.
	Saturation = 0.5
	// MinValue is the brightness of the shallowest states in a group.
	MinValue = 0.25
	// MaxValue is the brightness of the deepest states in a group.
	MaxValue = 0.7
)

// HSV is a color with all three components in [0,1].
type HSV struct {
	H, S, V float64
}

// String formats the color the way graphviz reads HSV triples.
func (c HSV) String() string {
	return fmt.Sprintf("%f %f %f", c.H, c.S, c.V)
}

// Hex returns the color as "#rrggbb".
func (c HSV) Hex() string {
	return colorful.Hsv(c.H*360, c.S, c.V).Clamped().Hex()
}

// Hue maps a namespace onto [0,1].
func Hue(namespace string) float64 {
	return float64(xxhash.Sum64String(namespace)) / math.MaxUint64
}

// Value maps depth from [minDepth,maxDepth] onto [MinValue,MaxValue].
// A group spanning a single depth gets MinValue.
func Value(depth, minDepth, maxDepth int) float64 {
	if maxDepth <= minDepth {
		return MinValue
	}
	t := float64(depth-minDepth) / float64(maxDepth-minDepth)
	return MinValue + t*(MaxValue-MinValue)
}

// Color returns the color of a state at depth in the given group.
func Color(g transform.Group, depth int) HSV {
	return HSV{
		H: Hue(g.Namespace),
		S: Saturation,
		V: Value(depth, g.MinDepth, g.MaxDepth),
	}
}

// Assign colors every state in groups, keyed by state name.
func Assign(groups []transform.Group) map[string]HSV {
	colors := make(map[string]HSV)
	for _, g := range groups {
		for _, r := range g.Ranks {
			c := Color(g, r.Depth)
			for _, s := range r.States {
				colors[s] = c
			}
		}
	}
	return colors
}
