// Package render paints a grown tree onto a screen.
//
// The [Renderer] walks the event list in order. In live mode it pauses after
// every cell and polls a [KeyPoller]; a key press stops the walk at the next
// cell boundary and Render reports the tree as incomplete so callers can skip
// any overlay that assumes a finished tree.
package render
