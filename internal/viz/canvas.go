package viz

import (
	"strings"

	"github.com/san-kum/bonsai/internal/bonsai"
)

type Cell struct {
	Glyph  rune
	Style  bonsai.Style
	Styled bool
}

// Canvas is a fixed grid of styled cells addressed like a terminal.
type Canvas struct {
	Width, Height int
	Grid          [][]Cell

	x, y   int
	style  bonsai.Style
	styled bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]Cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int, error) { return c.Width, c.Height, nil }

func (c *Canvas) MoveTo(x, y int) { c.x, c.y = x, y }

func (c *Canvas) SetStyle(s bonsai.Style) { c.style, c.styled = s, true }

func (c *Canvas) ResetStyle() { c.styled = false }

// Print writes s at the cursor and advances it. Cells off the grid are
// dropped.
func (c *Canvas) Print(s string) {
	for _, r := range s {
		if c.y >= 0 && c.y < c.Height && c.x >= 0 && c.x < c.Width {
			c.Grid[c.y][c.x] = Cell{Glyph: r, Style: c.style, Styled: c.styled}
		}
		c.x++
	}
}

func (c *Canvas) Flush() error { return nil }

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{Glyph: ' '}
		}
	}
	c.x, c.y, c.styled = 0, 0, false
}

// At returns the cell at (x, y), or a blank cell off the grid.
func (c *Canvas) At(x, y int) Cell {
	if y < 0 || y >= c.Height || x < 0 || x >= c.Width {
		return Cell{Glyph: ' '}
	}
	return c.Grid[y][x]
}

// String returns the grid as plain text with trailing blanks trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		line := make([]rune, len(row))
		for i, cell := range row {
			line[i] = cell.Glyph
		}
		b.WriteString(strings.TrimRight(string(line), " ") + "\n")
	}
	return b.String()
}

// Render returns the grid with each run of equally styled cells passed
// through its lipgloss style.
func (c *Canvas) Render() string {
	rows := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		rows[i] = renderRow(row)
	}
	return strings.Join(rows, "\n")
}

func renderRow(row []Cell) string {
	end := len(row)
	for end > 0 && row[end-1].Glyph == ' ' && !row[end-1].Styled {
		end--
	}

	var b strings.Builder
	var run []rune
	var runCell Cell
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runCell.Styled {
			b.WriteString(cellStyle(runCell.Style).Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for _, cell := range row[:end] {
		if len(run) > 0 && (cell.Styled != runCell.Styled || cell.Style != runCell.Style) {
			flush()
		}
		runCell = cell
		run = append(run, cell.Glyph)
	}
	flush()
	return b.String()
}
