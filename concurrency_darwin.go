//go:build darwin
// +build darwin

package linenoise

import (
	"golang.org/x/sys/unix"
)

// waitForReadable blocks until stdin has data ready to read, returning
// false if the wait was interrupted by a delivered signal so the caller
// re-checks its channels before waiting again. Darwin has no pselect
// syscall, so plain select is used; signal delivery still interrupts it
// with EINTR, and the signal itself arrives on l.signalChan via
// signal.Notify.
func (l *lineEditor) waitForReadable() bool {
	fds := unix.FdSet{}
	fds.Set(unix.Stdin)

	n, err := unix.Select(unix.Stdin+1, &fds, nil, nil, nil)
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
