package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSingleLineEditor(columns uint32) *lineEditor {
	e := NewEditor().(*lineEditor)
	e.SetMultilineMode(false)
	e.numColumns = columns
	return e
}

func TestScrollViewKeepsCursorVisible(t *testing.T) {
	e := newSingleLineEditor(10)
	e.SetPrompt("> ")
	e.InsertString("0123456789abcdef")

	// Cursor is at offset 16; with a 2-column prompt in 10 columns only
	// 8 buffer cells fit, so the view must start at 16-8+1... the loop
	// advances viewStart until promptCols+cursor-viewStart < columns.
	end := e.scrollViewToCursor(2, 10)
	assert.Equal(t, uint32(9), e.viewStart)
	assert.Equal(t, uint32(16), end)

	// Moving the cursor back before the view rewinds it.
	e.cursor = 3
	_ = e.scrollViewToCursor(2, 10)
	assert.Equal(t, uint32(3), e.viewStart)
}

func TestScrollViewShortLineDoesNotScroll(t *testing.T) {
	e := newSingleLineEditor(80)
	e.SetPrompt("> ")
	e.InsertString("hello")

	end := e.scrollViewToCursor(2, 80)
	assert.Equal(t, uint32(0), e.viewStart)
	assert.Equal(t, uint32(5), end)
}

func TestRefreshSingleLineClearsRefreshFlag(t *testing.T) {
	e := newSingleLineEditor(80)
	e.SetPrompt("> ")
	e.InsertString("hello")
	e.refreshNeeded = true

	e.refreshSingleLine()
	assert.False(t, e.refreshNeeded)
	assert.Equal(t, e.cursor, e.drawnCursor)
}

func TestPromptColumnsSkipsEscapeSequences(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.SetPrompt("\x1b[32m> \x1b[0m")
	assert.Equal(t, uint32(2), e.promptColumns())
}

func TestSetMultilineModeResetsView(t *testing.T) {
	e := newSingleLineEditor(10)
	e.viewStart = 5
	e.SetMultilineMode(true)
	assert.Equal(t, uint32(0), e.viewStart)
	assert.True(t, e.refreshNeeded)
}
