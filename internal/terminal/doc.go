// Package terminal is the concrete screen used for interactive runs.
//
// Output goes through a buffered termenv.Output; cursor addressing, SGR
// styles and screen clearing all use termenv sequences. Input is only ever
// polled: the terminal is put in raw mode so single key presses become
// readable, and KeyPressed drains whatever is pending without blocking.
package terminal
