package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hsmgraph/pkg/render"
)

// Validate reports whether src parses as DOT.
func Validate(src string) error {
	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	return g.Close()
}

// RenderSVG lays out src with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, src string) ([]byte, error) {
	svg, err := renderGraphviz(ctx, src, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG lays out src with Graphviz and returns PNG bytes.
func RenderPNG(ctx context.Context, src string) ([]byte, error) {
	return renderGraphviz(ctx, src, graphviz.PNG)
}

// RenderPDF renders src as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, src string) ([]byte, error) {
	svg, err := RenderSVG(ctx, src)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

func renderGraphviz(ctx context.Context, src string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
