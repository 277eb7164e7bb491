// Package base draws the pot the tree grows out of.
package base

import (
	"github.com/san-kum/bonsai/internal/bonsai"
	"github.com/san-kum/bonsai/internal/render"
)

const (
	None  = 0
	Large = 1
	Small = 2
)

// Gray colors the rim of the pot.
const Gray bonsai.Color = 8

type line struct {
	text  string
	style *bonsai.Style
}

type art struct {
	width  int
	offset int
	lines  []line
}

var (
	rim  = &bonsai.Style{Foreground: Gray}
	soil = &bonsai.Style{Foreground: bonsai.ColorGreen}
)

var arts = map[int]art{
	Large: {
		width:  31,
		offset: 5,
		lines: []line{
			{":___________./~~~\\.___________:", rim},
			{" \\                           / ", soil},
			{"  \\_________________________/ ", soil},
			{"  (_)                     (_)", nil},
		},
	},
	Small: {
		width:  15,
		offset: 4,
		lines: []line{
			{"(---./~~~\\.---)", rim},
			{" (           ) ", nil},
			{"  (_________)  ", nil},
		},
	},
}

// Valid reports whether kind names a known base.
func Valid(kind int) bool {
	if kind == None {
		return true
	}
	_, ok := arts[kind]
	return ok
}

// Offset is the number of rows reserved below the tree for the base.
func Offset(kind int) int {
	return arts[kind].offset
}

// Lines returns the art for kind, top row first.
func Lines(kind int) []string {
	a := arts[kind]
	out := make([]string, len(a.lines))
	for i, l := range a.lines {
		out[i] = l.text
	}
	return out
}

// Draw paints the base centered on the bottom rows of a width x height
// screen. Rows that fall off a tiny screen are skipped.
func Draw(s render.Screen, kind, width, height int) {
	a, ok := arts[kind]
	if !ok {
		return
	}
	x := width/2 - a.width/2
	if x < 0 {
		x = 0
	}
	for i, l := range a.lines {
		y := height - len(a.lines) + i
		if y < 0 {
			continue
		}
		if l.style != nil {
			s.SetStyle(*l.style)
		}
		s.MoveTo(x, y)
		s.Print(l.text)
		s.ResetStyle()
	}
}
