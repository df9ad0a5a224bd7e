//go:build linux
// +build linux

package linenoise

import (
	"golang.org/x/sys/unix"
)

// waitForReadable blocks until stdin has data ready to read, returning
// false if the wait was interrupted by a delivered signal (the signal
// itself arrives on l.signalChan independently, via signal.Notify) so
// the caller re-checks both channels before waiting again. Pselect is
// called with no signal mask, so the thread's signal mask is left as it
// is during the wait; a signal interrupts it with EINTR.
func (l *lineEditor) waitForReadable() bool {
	fds := unix.FdSet{}
	fds.Set(unix.Stdin)

	n, err := unix.Pselect(unix.Stdin+1, &fds, nil, nil, nil, nil)
	if err != nil {
		if err == unix.EINTR {
			return false
		}
		l.inputError = newError(KindIO, err)
		l.loopChan <- loopExitCodeExit
		return false
	}
	return n > 0 && fds.IsSet(unix.Stdin)
}
