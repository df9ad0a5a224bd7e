package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCharAppendsAtCursor(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertChar('a')
	e.InsertChar('b')
	e.InsertChar('c')
	assert.Equal(t, "abc", e.Line())
	assert.Equal(t, uint32(3), e.cursor)
}

func TestInsertCharInsertsInMiddle(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("ac")
	e.cursor = 1
	e.InsertChar('b')
	assert.Equal(t, "abc", e.Line())
}

func TestLineUpToIsPrefix(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("hello world")
	require.Equal(t, "hello world", e.Line())
	assert.Equal(t, "hello", e.LineUpTo(5))
	assert.Equal(t, "", e.LineUpTo(0))
}

func TestSetLineReplacesBufferAndClampsCursor(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("0123456789")
	e.cursor = 9
	e.SetLine("ab")
	assert.Equal(t, "ab", e.Line())
	assert.Equal(t, uint32(2), e.cursor)
}

func TestResetClearsEditingState(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.cursor = 5
	e.inputError = ErrCancelled
	e.Reset()
	assert.Equal(t, uint32(0), e.cursor)
	assert.NoError(t, e.inputError)
}
