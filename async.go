package linenoise

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sys/unix"
)

// Cancel requests that the current GetLine/GetLineSync/GetLineStep call
// stop as if the user had pressed ^C. It only sets a flag and pokes a
// buffered channel, so it is safe to call from any goroutine, including
// from inside a signal handler's notification path.
func (l *lineEditor) Cancel() {
	l.cancelRequested.Store(true)
	select {
	case l.cancelChan <- struct{}{}:
	default:
	}
}

// GetLineStep is the non-blocking counterpart to GetLine. It consumes
// whatever input is ready on stdin right now and returns ErrWouldBlock
// once a further read would block; the caller is expected to call it
// again with the same prompt when stdin becomes readable. The first call
// of a session draws the prompt; the call that sees the line finished
// tears the session down and returns the line.
func (l *lineEditor) GetLineStep(prompt string) (string, error) {
	if IsUnsupportedTerminal(unix.Stdin) {
		return l.getLineDumb(prompt)
	}

	if !l.stepActive {
		if err := l.beginSession(prompt); err != nil {
			return "", err
		}
		// The step loop has no reader goroutine feeding laterChan, but
		// handleReadEvent still posts to it when a partial escape
		// sequence leaves bytes behind, so give it some slack.
		l.laterChan = make(chan laterEventCode, 16)
		l.loopChan = make(chan loopExitCode, 1)
		if l.escTimeoutChan == nil {
			l.escTimeoutChan = make(chan struct{}, 1)
		}
		l.signalChan = make(chan os.Signal, 1)
		if l.enableSignalHandling {
			signal.Notify(l.signalChan, unix.SIGWINCH, unix.SIGINT)
		}
		l.stepActive = true
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
			l.endStepSession()
			if code == loopExitCodeRetry {
				return l.GetLineStep(prompt)
			}
			l.finish = false
			return l.returnedLine, l.inputError
		default:
		}

		if l.cancelRequested.Swap(false) {
			select {
			case <-l.cancelChan:
			default:
			}
			l.interrupted()
			continue
		}

		if len(l.incompleteData) == 0 && !pollReadable() {
			return "", ErrWouldBlock
		}

		l.tryUpdateOnce()
	}
}

// beginSession performs the shared prologue of every read variant:
// terminal setup, prompt layout, origin query, and the initial draw.
func (l *lineEditor) beginSession(prompt string) error {
	l.Initialize()
	if !l.initialized {
		return l.inputError
	}
	l.isEditing = true
	oldCols := l.numColumns
	oldLines := l.numLines
	l.getTerminalSize()

	if l.enableBracketedPaste {
		l.enableTerminalBracketedPaste()
	}

	if l.numColumns != oldCols || l.numLines != oldLines {
		l.refreshNeeded = true
	}

	l.SetPrompt(prompt)
	l.Reset()
	l.StripStyles()

	promptLines := max(uint32(len(l.CurrentPromptMetrics().LineMetrics)), 1) - 1
	for i := uint32(0); i < promptLines; i++ {
		_, _ = os.Stderr.Write([]byte("\n"))
	}
	vtMoveRelative(-int64(promptLines), 0, os.Stderr)
	l.setOrigin(true)

	l.historyCursor = uint32(len(l.history))

	l.refreshDisplay()
	return nil
}

func (l *lineEditor) endStepSession() {
	if l.enableSignalHandling && l.signalChan != nil {
		signal.Stop(l.signalChan)
	}
	l.stepActive = false
}

// getLineDumb reads one line the way a line editor cannot: plain buffered
// input, no raw mode, no escape sequences. Used when $TERM names a
// terminal from the unsupported list.
func (l *lineEditor) getLineDumb(prompt string) (string, error) {
	if l.dumbReader == nil {
		l.dumbReader = bufio.NewReader(os.Stdin)
	}
	return readDumbLine(l.dumbReader, os.Stderr, prompt)
}

func readDumbLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	_, _ = io.WriteString(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", ErrClosed
		}
		return "", newError(KindIO, err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
