package bonsai

import (
	"fmt"
	"math/rand/v2"
)

// Kind is the growth variant of a branch.
type Kind uint8

const (
	Trunk Kind = iota
	ShootLeft
	ShootRight
	Dying
	Dead
)

func (k Kind) String() string {
	switch k {
	case Trunk:
		return "Trunk"
	case ShootLeft:
		return "ShootLeft"
	case ShootRight:
		return "ShootRight"
	case Dying:
		return "Dying"
	case Dead:
		return "Dead"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Growing reports whether the kind can still spawn shoots or die off.
func (k Kind) Growing() bool {
	return k == Trunk || k == ShootLeft || k == ShootRight
}

// Position is a terminal cell coordinate. Y grows downward.
type Position struct {
	X, Y int
}

// Color is an index into the 16-color ANSI palette.
type Color uint8

const (
	ColorGreen        Color = 2
	ColorYellow       Color = 3
	ColorBrightGreen  Color = 10
	ColorBrightYellow Color = 11
)

// Style is the visual attribute of a glyph. The background is always the
// terminal default.
type Style struct {
	Bold       bool
	Foreground Color
}

// Rand is the random source driving a run. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Config holds the immutable parameters of one growth run.
type Config struct {
	Life       int
	Multiplier int
	Width      int
	Height     int
	BaseOffset int
}

// Validate checks the preconditions Grow relies on.
func (c Config) Validate() error {
	if c.Life <= 0 {
		return &ConfigError{Field: "life", Value: c.Life, Wrapped: ErrInvalidLife}
	}
	if c.Multiplier <= 0 {
		return &ConfigError{Field: "multiplier", Value: c.Multiplier, Wrapped: ErrInvalidMultiplier}
	}
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Wrapped: ErrInvalidBounds}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Value: c.Height, Wrapped: ErrInvalidBounds}
	}
	if c.BaseOffset < 0 || c.BaseOffset >= c.Height {
		return &ConfigError{Field: "base_offset", Value: c.BaseOffset, Wrapped: ErrInvalidBaseOffset}
	}
	return nil
}

// Bounds returns the drawable area. The floor is the screen height minus the
// base reservation, clamped to the last visible row.
func (c Config) Bounds() Bounds {
	floor := c.Height - c.BaseOffset
	if floor > c.Height-1 {
		floor = c.Height - 1
	}
	return Bounds{Width: c.Width, Floor: floor}
}

// Bounds is the rectangle [0, Width) x [0, Floor] a tree may occupy.
type Bounds struct {
	Width int
	Floor int
}

func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y <= b.Floor
}

// State is the run-wide bookkeeping shared by every branch call.
type State struct {
	Shoots       int
	Branches     int
	ShootCounter int
	Floor        int
}

// shootKind picks the side of the next shoot from the parity counter.
func (s *State) shootKind() Kind {
	if s.ShootCounter%2 == 0 {
		return ShootLeft
	}
	return ShootRight
}

// Event is one painted cell of the tree. The fields after Glyph are
// provenance used by diagnostics.
type Event struct {
	Pos   Position
	Style Style
	Glyph string

	Kind          Kind
	Branch        int
	Life          int
	Dx, Dy        int
	Shoots        int
	ShootCooldown int
}

// Spawn records one branch call in the order calls were made.
type Spawn struct {
	Kind   Kind
	Parent int // -1 for the root trunk
	Pos    Position
	Life   int
}

// Tree is the result of a growth run.
type Tree struct {
	Events []Event
	Spawns []Spawn
	State  State
	Bounds Bounds
}
