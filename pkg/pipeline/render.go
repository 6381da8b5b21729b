package pipeline

import (
	"context"

	"github.com/matzehuels/hsmgraph/pkg/render/dot"
)

// Render turns DOT text into one output format. FormatDOT returns the text
// unchanged.
func Render(ctx context.Context, src string, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(src), nil
	case FormatSVG:
		return dot.RenderSVG(ctx, src)
	case FormatPNG:
		return dot.RenderPNG(ctx, src)
	case FormatPDF:
		return dot.RenderPDF(ctx, src)
	default:
		return nil, ValidateFormat(format)
	}
}
