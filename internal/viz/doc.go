// Package viz renders trees without a raw terminal.
//
// [Canvas] is an in-memory [render.Screen]: print mode paints into it and
// writes the styled rows to stdout. [Model] is a Bubble Tea program that
// replays a tree cell by cell inside the alternate screen.
//
// # Key Bindings
//
//	Space - Finish the current tree
//	R     - Grow a new tree
//	Q     - Quit
package viz
