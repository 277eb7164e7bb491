package render

import "github.com/san-kum/bonsai/internal/bonsai"

// Screen is the minimal terminal surface a renderer needs. Writes may be
// buffered; Flush reports any deferred I/O failure.
type Screen interface {
	Size() (width, height int, err error)
	MoveTo(x, y int)
	SetStyle(style bonsai.Style)
	ResetStyle()
	Print(s string)
	Flush() error
}

// KeyPoller reports, without blocking, whether a key has been pressed since
// the last call.
type KeyPoller interface {
	KeyPressed() bool
}

// NoKeys never reports a key press.
type NoKeys struct{}

func (NoKeys) KeyPressed() bool { return false }

// Paint draws a single event and restores the default style.
func Paint(s Screen, ev bonsai.Event) {
	s.SetStyle(ev.Style)
	s.MoveTo(ev.Pos.X, ev.Pos.Y)
	s.Print(ev.Glyph)
	s.ResetStyle()
}
