// Package message draws the bordered note shown next to a finished tree.
package message

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/san-kum/bonsai/internal/render"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Box renders msg inside a rounded border, wrapping text wider than
// maxWidth columns. The result is plain text, one string per row.
func Box(msg string, maxWidth int) []string {
	w := lipgloss.Width(msg)
	if w > maxWidth {
		w = maxWidth
	}
	if w < 1 {
		w = 1
	}
	out := ansi.Strip(boxStyle.Width(w + 2).Render(msg))
	return strings.Split(out, "\n")
}

// Place picks the top left corner of a box beside the trunk, kept fully on a
// width x height screen.
func Place(lines []string, width, height int) (x, y int) {
	boxW := 0
	for _, l := range lines {
		if lw := lipgloss.Width(l); lw > boxW {
			boxW = lw
		}
	}
	x = width * 5 / 8
	if x+boxW > width {
		x = width - boxW
	}
	y = height*7/10 - len(lines)/2
	if y+len(lines) > height {
		y = height - len(lines)
	}
	return max(x, 0), max(y, 0)
}

// Draw paints msg on the screen. A quarter of the screen width bounds the
// text; very narrow screens still get a few columns.
func Draw(s render.Screen, msg string, width, height int) {
	if msg == "" {
		return
	}
	lines := Box(msg, max(width/4, 8))
	x, y := Place(lines, width, height)

	s.ResetStyle()
	for i, l := range lines {
		s.MoveTo(x, y+i)
		s.Print(l)
	}
}
