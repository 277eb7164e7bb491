// Package bonsai implements the stochastic growth engine behind the ASCII
// bonsai generator.
//
// A tree is grown by a recursive random walk. Every branch tip owns a life
// counter, a position and a shoot cooldown; at each step it draws a delta,
// may spawn child branches, and emits a styled draw event:
//
//   - [Deltas]: per-kind weighted (dx, dy) step
//   - [ChooseStyle]: per-kind weighted glyph attribute and color
//   - [Glyph]: deterministic character lookup for a step
//   - [Grow]: orchestrates the recursion and returns the ordered [Event] list
//
// # Example
//
//	cfg := bonsai.Config{Life: 32, Multiplier: 5, Width: 80, Height: 24, BaseOffset: 5}
//	tree := bonsai.Grow(cfg, bonsai.NewRand(42))
//	for _, ev := range tree.Events {
//	    // paint ev.Glyph at ev.Pos with ev.Style
//	}
//
// # Determinism
//
// All randomness comes from the [Rand] passed to [Grow]. The same seed and
// configuration always produce an identical event sequence.
//
// # Thread Safety
//
// Grow keeps its state on the stack of a single call. Concurrent calls are
// safe as long as they do not share a Rand.
package bonsai
