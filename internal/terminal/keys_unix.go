//go:build unix

package terminal

import "golang.org/x/sys/unix"

// KeysSupported reports whether KeyPressed can see input.
const KeysSupported = true

// KeyPressed polls stdin without blocking and drains any pending input.
func (t *Terminal) KeyPressed() bool {
	if t.in == nil {
		return false
	}
	pressed := false
	buf := make([]byte, 64)
	for {
		fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return pressed
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return pressed
		}
		rn, err := unix.Read(t.inFd, buf)
		if err != nil || rn <= 0 {
			return pressed
		}
		pressed = true
	}
}
