package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newEditorWithHistory(entries ...string) *lineEditor {
	e := NewEditor().(*lineEditor)
	for _, entry := range entries {
		e.AddToHistory(entry)
	}
	e.historyCursor = uint32(len(e.history))
	return e
}

func TestSearchFindsMostRecentSubstringMatch(t *testing.T) {
	e := newEditorWithHistory("echo hello", "ls -la")

	assert.True(t, e.search("ech", false, false))
	assert.Equal(t, "echo hello", e.Line())
	assert.Equal(t, uint32(3), e.cursor, "cursor lands just after the match")
}

func TestSearchPositionsCursorAfterRightmostOccurrence(t *testing.T) {
	e := newEditorWithHistory("echo hello hello")

	assert.True(t, e.search("hello", false, false))
	assert.Equal(t, uint32(len("echo hello hello")), e.cursor)
}

func TestSearchPromptEmbedsQuery(t *testing.T) {
	assert.Equal(t, "(reverse-i-search`ech'): ", searchPromptFor("ech"))
	assert.Equal(t, "(reverse-i-search`'): ", searchPromptFor(""))
}

func TestSearchOffsetSkipsToOlderMatches(t *testing.T) {
	e := newEditorWithHistory("make test", "make build", "git status")

	e.searchOffset = 0
	assert.True(t, e.search("make", false, false))
	assert.Equal(t, "make build", e.Line())

	e.buffer = e.buffer[:0]
	e.cursor = 0
	e.searchOffset = 1
	assert.True(t, e.search("make", false, false))
	assert.Equal(t, "make test", e.Line())
}

func TestSearchWithNoMatchLeavesBufferAlone(t *testing.T) {
	e := newEditorWithHistory("echo hello")
	e.InsertString("partial")

	assert.False(t, e.search("zzz", false, false))
	assert.Equal(t, "partial", e.Line())
}

func TestSearchEmptyPhraseFindsNothingUnlessAllowed(t *testing.T) {
	e := newEditorWithHistory("one", "two")

	assert.False(t, e.search("", false, false))

	e.searchOffset = 0
	assert.True(t, e.search("", true, false))
	assert.Equal(t, "two", e.Line())
}

func TestSearchFromBeginningMatchesPrefixOnly(t *testing.T) {
	e := newEditorWithHistory("echo hello", "hello there")

	assert.True(t, e.search("hello", false, true))
	assert.Equal(t, "hello there", e.Line())

	e.buffer = e.buffer[:0]
	e.cursor = 0
	e.searchOffset = 0
	assert.False(t, e.search("o hello", false, true))
}

func TestEndSearchRestoresPreSearchBufferWhenRequested(t *testing.T) {
	e := newEditorWithHistory("echo hello")
	e.InsertString("draft")
	e.preSearchBuffer = append(e.preSearchBuffer[:0], e.buffer...)
	e.preSearchCursor = e.cursor
	e.isSearching = true

	assert.True(t, e.search("echo", false, false))
	assert.Equal(t, "echo hello", e.Line())

	e.resetBufferOnSearchEnd = true
	e.endSearch()
	assert.Equal(t, "draft", e.Line())
	assert.False(t, e.isSearching)
}

func TestEndSearchKeepsMatchedEntryWhenNotReset(t *testing.T) {
	e := newEditorWithHistory("echo hello")
	e.preSearchBuffer = append(e.preSearchBuffer[:0], e.buffer...)
	e.isSearching = true

	assert.True(t, e.search("echo", false, false))

	e.resetBufferOnSearchEnd = false
	e.endSearch()
	assert.Equal(t, "echo hello", e.Line())
}
