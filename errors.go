package linenoise

import (
	"github.com/pkg/errors"
)

// Kind classifies the sum type of errors a session can return, per the
// taxonomy a host program is expected to switch on: NoTTY, IO,
// OutOfMemory, InvalidArgument, Closed, Cancelled, WouldBlock.
type Kind int

const (
	KindNone Kind = iota
	KindNoTTY
	KindIO
	KindOutOfMemory
	KindInvalidArgument
	KindClosed
	KindCancelled
	KindWouldBlock
)

func (k Kind) String() string {
	switch k {
	case KindNoTTY:
		return "not a terminal"
	case KindIO:
		return "i/o error"
	case KindOutOfMemory:
		return "out of memory"
	case KindInvalidArgument:
		return "invalid argument"
	case KindClosed:
		return "closed"
	case KindCancelled:
		return "cancelled"
	case KindWouldBlock:
		return "would block"
	default:
		return "none"
	}
}

// sessionError carries a Kind alongside whatever pkg/errors-wrapped cause
// produced it, so a caller can either compare Kind (stable, documented) or
// unwrap for a stack trace during development.
type sessionError struct {
	kind  Kind
	cause error
}

func (e *sessionError) Error() string {
	if e.cause == nil {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.cause.Error()
}

func (e *sessionError) Unwrap() error { return e.cause }

func newError(kind Kind, cause error) error {
	if cause == nil {
		return &sessionError{kind: kind}
	}
	return &sessionError{kind: kind, cause: errors.WithStack(cause)}
}

// ErrorKind extracts the Kind from an error produced by this package.
// Errors from other sources report KindNone.
func ErrorKind(err error) Kind {
	var se *sessionError
	if errors.As(err, &se) {
		return se.kind
	}
	return KindNone
}

var (
	// ErrClosed is returned by GetLine when input reached end-of-file
	// with an empty buffer, or CTRL_D was pressed on an empty buffer.
	ErrClosed = newError(KindClosed, nil)
	// ErrCancelled is returned when the user pressed CTRL_C on an empty
	// buffer, or the external Cancel flag was observed.
	ErrCancelled = newError(KindCancelled, nil)
	// ErrWouldBlock is returned by the async step API when no input is
	// currently available; it is a continuation signal, not a failure.
	ErrWouldBlock = newError(KindWouldBlock, nil)
)
