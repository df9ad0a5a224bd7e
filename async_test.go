package linenoise

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDumbLineReturnsLineWithoutNewline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer

	line, err := readDumbLine(r, &out, "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)
	assert.Equal(t, "> ", out.String())
}

func TestReadDumbLineStripsCarriageReturn(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("hello\r\n"))
	var out bytes.Buffer

	line, err := readDumbLine(r, &out, "")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestReadDumbLineEmptyInputReportsClosed(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := readDumbLine(r, &out, "> ")
	assert.Equal(t, KindClosed, ErrorKind(err))
}

func TestReadDumbLineReturnsPartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer

	line, err := readDumbLine(r, &out, "")
	require.NoError(t, err)
	assert.Equal(t, "no newline", line)
}

func TestReadDumbLinePreservesEmptyLines(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\nsecond\n"))
	var out bytes.Buffer

	line, err := readDumbLine(r, &out, "")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = readDumbLine(r, &out, "")
	require.NoError(t, err)
	assert.Equal(t, "second", line)
}

func TestCancelSetsFlagAndPokesChannel(t *testing.T) {
	e := NewEditor().(*lineEditor)

	e.Cancel()
	assert.True(t, e.cancelRequested.Load())

	select {
	case <-e.cancelChan:
	default:
		t.Fatal("expected a pending cancel notification")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	e := NewEditor().(*lineEditor)

	// A second Cancel before the first is observed must not block.
	e.Cancel()
	e.Cancel()
	assert.True(t, e.cancelRequested.Load())
}
