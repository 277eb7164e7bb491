package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/bonsai/internal/bonsai"
)

// PollInterval is how often a paced wait checks for a key press.
const PollInterval = 50 * time.Millisecond

// ErrPaint wraps terminal write failures.
var ErrPaint = errors.New("render: paint failed")

type Options struct {
	Live     bool
	Interval time.Duration
	Verbose  bool
}

type Renderer struct {
	screen Screen
	keys   KeyPoller
	opts   Options
}

func New(screen Screen, keys KeyPoller, opts Options) *Renderer {
	if keys == nil {
		keys = NoKeys{}
	}
	return &Renderer{screen: screen, keys: keys, opts: opts}
}

// Render paints events in order. It returns false when a key press or a
// canceled context stopped it early; only a canceled context or a write
// failure yields an error.
func (r *Renderer) Render(ctx context.Context, events []bonsai.Event) (bool, error) {
	for _, ev := range events {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		if r.opts.Verbose {
			r.diagnostics(ev)
		}
		Paint(r.screen, ev)

		if !r.opts.Live {
			continue
		}
		if err := r.flush(); err != nil {
			return false, err
		}
		ok, err := r.Wait(ctx, r.opts.Interval)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, r.flush()
}

// Header prints the drawable area at the top left of the screen.
func (r *Renderer) Header(b bonsai.Bounds) {
	r.screen.MoveTo(5, 2)
	r.screen.Print(fmt.Sprintf("maxX: %03d, maxY: %03d", b.Width, b.Floor))
}

func (r *Renderer) diagnostics(ev bonsai.Event) {
	lines := []string{
		fmt.Sprintf("life: %d", ev.Life),
		fmt.Sprintf("shoots: %02d", ev.Shoots),
		fmt.Sprintf("dx: %02d", ev.Dx),
		fmt.Sprintf("dy: %02d", ev.Dy),
		fmt.Sprintf("type: %-10s", ev.Kind),
		fmt.Sprintf("shootCooldown: %3d", ev.ShootCooldown),
	}
	for i, line := range lines {
		r.screen.MoveTo(5, 3+i)
		r.screen.Print(line)
	}
}

// Wait blocks for d unless a key is pressed or ctx is done first. It reports
// true when the full interval elapsed.
func (r *Renderer) Wait(ctx context.Context, d time.Duration) (bool, error) {
	if r.keys.KeyPressed() {
		return false, nil
	}
	if d <= 0 {
		return true, nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	poll := time.NewTicker(PollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
			return true, nil
		case <-poll.C:
			if r.keys.KeyPressed() {
				return false, nil
			}
		}
	}
}

func (r *Renderer) flush() error {
	if err := r.screen.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrPaint, err)
	}
	return nil
}
