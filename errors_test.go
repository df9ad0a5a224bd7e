package linenoise

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindRecoversKindThroughWrapping(t *testing.T) {
	err := newError(KindIO, io.ErrUnexpectedEOF)
	assert.Equal(t, KindIO, ErrorKind(err))
	assert.Contains(t, err.Error(), "i/o error")
}

func TestErrorKindOfUnrelatedErrorIsNone(t *testing.T) {
	assert.Equal(t, KindNone, ErrorKind(io.ErrUnexpectedEOF))
}

func TestSentinelErrorsReportTheirKind(t *testing.T) {
	assert.Equal(t, KindClosed, ErrorKind(ErrClosed))
	assert.Equal(t, KindCancelled, ErrorKind(ErrCancelled))
	assert.Equal(t, KindWouldBlock, ErrorKind(ErrWouldBlock))
}

func TestNewErrorWithoutCauseStillReportsKind(t *testing.T) {
	err := newError(KindInvalidArgument, nil)
	assert.Equal(t, KindInvalidArgument, ErrorKind(err))
	assert.Equal(t, "invalid argument", err.Error())
}
