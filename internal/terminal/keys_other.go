//go:build !unix

package terminal

const KeysSupported = false

// KeyPressed is not supported off unix; live runs simply play to the end.
func (t *Terminal) KeyPressed() bool {
	return false
}
