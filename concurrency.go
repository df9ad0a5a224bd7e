package linenoise

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// GetLineSync is the single-threaded counterpart to GetLine. GetLine hands
// the wait for readable input off to a background goroutine that wakes the
// main loop over a channel; GetLineSync instead blocks the calling
// goroutine directly on the terminal descriptor via unix.Pselect, so a host
// program that has no other event sources to interleave never pays for a
// second goroutine. Signal handling, history, and display behavior are
// identical to GetLine.
func (l *lineEditor) GetLineSync(prompt string) (string, error) {
	if IsUnsupportedTerminal(unix.Stdin) {
		return l.getLineDumb(prompt)
	}

	if err := l.beginSession(prompt); err != nil {
		return "", err
	}

	l.loopChan = make(chan loopExitCode, 1)
	defer close(l.loopChan)

	// handleReadEvent and resized post follow-up work here; without a
	// reader goroutine the sends must never block, so leave headroom.
	l.laterChan = make(chan laterEventCode, 16)
	defer close(l.laterChan)

	l.signalChan = make(chan os.Signal, 1)
	defer func() {
		if l.enableSignalHandling {
			signal.Stop(l.signalChan)
		}
		close(l.signalChan)
	}()
	if l.enableSignalHandling {
		signal.Notify(l.signalChan, unix.SIGWINCH, unix.SIGINT)
	}

	if len(l.incompleteData) != 0 {
		l.tryUpdateOnce()
	}

	if l.escTimeoutChan == nil {
		l.escTimeoutChan = make(chan struct{}, 1)
	}

	for {
		select {
		case sig := <-l.signalChan:
			if sig == unix.SIGWINCH {
				l.resized()
			} else if sig == unix.SIGINT {
				l.interrupted()
			}
			continue
		case <-l.cancelChan:
			l.cancelRequested.Store(false)
			l.interrupted()
			continue
		case <-l.escTimeoutChan:
			if l.state == inputStateGotEscape || l.state == inputStateSS3 {
				l.state = l.previousFreeState
			}
			continue
		case code := <-l.laterChan:
			if l.finish {
				continue
			}
			switch code {
			case laterEventCodeHandleResizeEventFalse:
				l.handleResizeEvent(false)
			case laterEventCodeHandleResizeEventTrue:
				l.handleResizeEvent(true)
			case laterEventCodeTryUpdateOnce:
				l.tryUpdateOnce()
			}
			continue
		case code := <-l.loopChan:
			if code == loopExitCodeExit {
				l.finish = false
				l.logger.Debug("GetLineSync exiting")
				return l.returnedLine, l.inputError
			}
			if code == loopExitCodeRetry {
				return l.GetLineSync(prompt)
			}
			continue
		default:
		}

		if !l.waitForReadable() {
			continue
		}

		l.tryUpdateOnce()
	}
}

// pollReadable reports whether stdin has data ready right now, without
// blocking. Used by the step API to decide between consuming input and
// returning ErrWouldBlock to the caller.
func pollReadable() bool {
	fds := unix.FdSet{}
	fds.Set(unix.Stdin)
	timeout := unix.Timeval{}

	n, err := unix.Select(unix.Stdin+1, &fds, nil, nil, &timeout)
	return err == nil && n > 0 && fds.IsSet(unix.Stdin)
}
