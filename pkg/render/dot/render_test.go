package dot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/hsmgraph/pkg/hsm"
)

func TestValidate(t *testing.T) {
	l := layoutOf(t,
		tr("NS::A", hsm.Inner, "NS::B<T>"),
		tr("NS::B<T>", hsm.Sibling, "Other::C"),
		tr("Other::C", hsm.Sibling, "NS::B<T>"),
	)
	if err := Validate(ToDOT(l, Options{})); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := Validate(ToDOT(Layout{}, Options{})); err != nil {
		t.Errorf("Validate(empty) error = %v", err)
	}
}

func TestRenderSVG(t *testing.T) {
	src := ToDOT(layoutOf(t, tr("A", hsm.Inner, "B")), Options{})
	svg, err := RenderSVG(context.Background(), src)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("RenderSVG() root element not normalized: %.200s", svg)
	}
}

func TestRenderPNG(t *testing.T) {
	src := ToDOT(layoutOf(t, tr("A", hsm.Inner, "B")), Options{})
	png, err := RenderPNG(context.Background(), src)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("RenderPNG() output is not a PNG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %q", got)
	}
}
