// Package export writes a painted canvas as an SVG image.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/bonsai/internal/base"
	"github.com/san-kum/bonsai/internal/bonsai"
	"github.com/san-kum/bonsai/internal/viz"
)

// palette holds xterm's defaults for the colors trees use.
var palette = map[bonsai.Color]string{
	bonsai.ColorGreen:        "#00cd00",
	bonsai.ColorYellow:       "#cdcd00",
	bonsai.ColorBrightGreen:  "#00ff00",
	bonsai.ColorBrightYellow: "#ffff00",
	base.Gray:                "#7f7f7f",
}

const (
	background = "#0a0a0a"
	foreground = "#e5e5e5"
	// aspect is the width of a monospace cell relative to its height.
	aspect = 0.6
)

// CanvasToSVG renders each non-blank cell as a text element. scale is the
// height of one cell in pixels.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	cellW := scale * aspect
	width := float64(canvas.Width) * cellW
	height := float64(canvas.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f" xml:space="preserve">
`, width, height, width, height, background, scale))

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			cell := canvas.At(col, row)
			if cell.Glyph == ' ' {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s"%s>%s</text>
`,
				float64(col)*cellW,
				(float64(row)+0.8)*scale,
				fill(cell),
				weight(cell),
				html.EscapeString(string(cell.Glyph)),
			))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func fill(c viz.Cell) string {
	if !c.Styled {
		return foreground
	}
	if hex, ok := palette[c.Style.Foreground]; ok {
		return hex
	}
	return foreground
}

func weight(c viz.Cell) string {
	if c.Styled && c.Style.Bold {
		return ` font-weight="bold"`
	}
	return ""
}
