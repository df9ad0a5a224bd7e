// Package diag provides the session's internal diagnostic logger.
//
// The editor never logs to the terminal it is editing — that would
// corrupt the display — so this logger discards everything unless a host
// program explicitly opts in via (*linenoise session).SetLogger or
// EnableDebugLogging.
package diag

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger that discards all output.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Verbose returns a logger writing to w at debug level, formatted for a
// human reading a terminal session's stderr log file (never the terminal
// the session itself owns).
func Verbose(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
