package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/san-kum/bonsai/internal/bonsai"
)

var (
	ErrNotTerminal = errors.New("terminal: stdout is not a terminal")
	ErrSize        = errors.New("terminal: cannot query size")
)

// Fallback size used when output is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

type Terminal struct {
	in      *os.File
	inFd    int
	outFd   int
	buf     *bufio.Writer
	out     *termenv.Output
	oldTerm *term.State
	height  int
}

// Open wraps stdin and stdout. Stdout must be a terminal. The color profile
// is detected from the environment since the buffered writer hides the tty.
func Open() (*Terminal, error) {
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(outFd) {
		return nil, ErrNotTerminal
	}
	return newTerminal(os.Stdin, os.Stdout, outFd, termenv.WithProfile(termenv.EnvColorProfile())), nil
}

func newTerminal(in *os.File, w io.Writer, outFd int, opts ...termenv.OutputOption) *Terminal {
	buf := bufio.NewWriter(w)
	t := &Terminal{
		in:    in,
		outFd: outFd,
		buf:   buf,
		out:   termenv.NewOutput(buf, opts...),
	}
	if in != nil {
		t.inFd = int(in.Fd())
	}
	return t
}

// Raw puts stdin in raw mode so key presses are delivered immediately.
// It is a no-op when stdin is not a terminal.
func (t *Terminal) Raw() error {
	if t.in == nil || !term.IsTerminal(t.inFd) {
		return nil
	}
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("terminal: raw mode: %w", err)
	}
	t.oldTerm = old
	return nil
}

// Prepare clears the screen and hides the cursor.
func (t *Terminal) Prepare() error {
	t.out.HideCursor()
	t.out.ClearScreen()
	return t.Flush()
}

// Clear wipes the screen between trees.
func (t *Terminal) Clear() {
	t.out.ClearScreen()
}

// Close parks the cursor on the last row, shows it and restores the
// terminal mode.
func (t *Terminal) Close() error {
	t.ResetStyle()
	if t.height > 0 {
		t.MoveTo(0, t.height-1)
	}
	t.out.ShowCursor()
	t.buf.WriteString("\r\n")
	err := t.Flush()
	if t.oldTerm != nil {
		if rerr := term.Restore(t.inFd, t.oldTerm); rerr != nil && err == nil {
			err = rerr
		}
		t.oldTerm = nil
	}
	return err
}

func (t *Terminal) Size() (int, int, error) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrSize, err)
	}
	t.height = h
	return w, h, nil
}

// MoveTo positions the cursor at zero based cell coordinates.
func (t *Terminal) MoveTo(x, y int) {
	t.out.MoveCursor(y+1, x+1)
}

func (t *Terminal) SetStyle(s bonsai.Style) {
	t.buf.WriteString(styleSequence(t.out, s))
}

func (t *Terminal) ResetStyle() {
	t.buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
}

func (t *Terminal) Print(s string) {
	t.buf.WriteString(s)
}

func (t *Terminal) Flush() error {
	return t.buf.Flush()
}

// styleSequence builds the SGR sequence for s under the output's color
// profile. Profiles without color only keep the bold attribute.
func styleSequence(out *termenv.Output, s bonsai.Style) string {
	var seq string
	if s.Bold {
		seq = termenv.BoldSeq
	}
	if c := out.Color(strconv.Itoa(int(s.Foreground))); c != nil {
		if fg := c.Sequence(false); fg != "" {
			if seq != "" {
				seq += ";"
			}
			seq += fg
		}
	}
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// TerminalSize returns the size of stdout, or the fallback size when it is
// not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}
