package linenoise

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// unsupportedTerminals lists TERM values known to choke on the cursor
// queries and escape sequences this editor depends on.
var unsupportedTerminals = []string{"dumb", "cons25", "emacs"}

// isBlacklistedTerm reports whether $TERM is empty or names a terminal
// from the unsupported list. An empty TERM gives no basis for assuming
// escape-sequence support, so it is treated like a known-bad one.
func isBlacklistedTerm() bool {
	t := os.Getenv("TERM")
	if t == "" {
		return true
	}
	for _, bad := range unsupportedTerminals {
		if strings.EqualFold(t, bad) {
			return true
		}
	}
	return false
}

// IsUnsupportedTerminal reports whether the descriptor cannot host the
// interactive editing loop: it is not a terminal at all, or $TERM is
// empty or blacklisted. The read variants fall back to a plain buffered
// line read when this returns true.
func IsUnsupportedTerminal(fd int) bool {
	return !term.IsTerminal(fd) || isBlacklistedTerm()
}

// enableTerminalBracketedPaste asks the terminal to wrap pasted text in
// the \x1b[200~ / \x1b[201~ markers the input decoder understands, so a
// paste is delivered as one event instead of replayed keystrokes.
func (l *lineEditor) enableTerminalBracketedPaste() {
	_, _ = os.Stderr.WriteString("\x1b[?2004h")
}

func (l *lineEditor) disableTerminalBracketedPaste() {
	_, _ = os.Stderr.WriteString("\x1b[?2004l")
}

// IsInteractiveTerminal reports whether both stdin and stdout are
// attached to a supported terminal. A host program should fall back to a
// plain fmt.Scanln-style reader when this returns false, rather than
// calling GetLine against a pipe.
func IsInteractiveTerminal() bool {
	return !IsUnsupportedTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
