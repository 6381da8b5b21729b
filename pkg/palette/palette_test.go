package palette

import (
	"math"
	"regexp"
	"testing"

	"github.com/matzehuels/hsmgraph/pkg/graph/transform"
)

func TestValue(t *testing.T) {
	tests := []struct {
		depth, lo, hi int
		want          float64
	}{
		{0, 0, 0, MinValue},
		{3, 3, 3, MinValue},
		{0, 0, 2, MinValue},
		{1, 0, 2, (MinValue + MaxValue) / 2},
		{2, 0, 2, MaxValue},
		{5, 1, 5, MaxValue},
	}
	for _, tt := range tests {
		if got := Value(tt.depth, tt.lo, tt.hi); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Value(%d, %d, %d) = %v, want %v", tt.depth, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestHue(t *testing.T) {
	for _, ns := range []string{"", "NS", "NS::Outer", "a::b::c"} {
		h := Hue(ns)
		if h < 0 || h > 1 {
			t.Errorf("Hue(%q) = %v, out of [0,1]", ns, h)
		}
		if h != Hue(ns) {
			t.Errorf("Hue(%q) not stable", ns)
		}
	}
	if Hue("NS") == Hue("NS::Outer") {
		t.Error("distinct namespaces share a hue")
	}
}

func TestAssign(t *testing.T) {
	groups := []transform.Group{
		{
			Namespace: "Net",
			MinDepth:  1,
			MaxDepth:  3,
			Ranks: []transform.Rank{
				{Depth: 1, States: []string{"Net::A", "Net::B"}},
				{Depth: 3, States: []string{"Net::C"}},
			},
		},
		{
			Namespace: "",
			MinDepth:  0,
			MaxDepth:  0,
			Ranks:     []transform.Rank{{Depth: 0, States: []string{"Root"}}},
		},
	}

	colors := Assign(groups)
	if len(colors) != 4 {
		t.Fatalf("len(colors) = %d, want 4", len(colors))
	}
	a, b, c := colors["Net::A"], colors["Net::B"], colors["Net::C"]
	if a != b {
		t.Errorf("same rank colors differ: %v vs %v", a, b)
	}
	if a.H != c.H {
		t.Errorf("same namespace hues differ: %v vs %v", a.H, c.H)
	}
	if a.V != MinValue || c.V != MaxValue {
		t.Errorf("values = %v, %v, want %v, %v", a.V, c.V, MinValue, MaxValue)
	}
	if got := colors["Root"]; got.S != Saturation || got.V != MinValue {
		t.Errorf("Root = %v", got)
	}
}

func TestHSVFormat(t *testing.T) {
	c := HSV{H: 0.5, S: 0.5, V: 0.25}
	if got, want := c.String(), "0.500000 0.500000 0.250000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := c.Hex(); !regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(got) {
		t.Errorf("Hex() = %q", got)
	}
	if got, want := (HSV{H: 0, S: 1, V: 1}).Hex(), "#ff0000"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}
