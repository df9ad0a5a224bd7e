package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillLineEmptiesBuffer(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("hello world")
	e.cursor = 5

	killLine(e)
	assert.Equal(t, "", e.Line())
	assert.Equal(t, uint32(0), e.cursor)
}

func TestEraseToEndTruncatesAtCursor(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("hello world")
	e.cursor = 5

	eraseToEnd(e)
	assert.Equal(t, "hello", e.Line())
	assert.Equal(t, uint32(5), e.cursor)
}

func TestEraseWordBackwardsSkipsSpacesThenWord(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("one two   ")

	eraseWordBackwards(e)
	assert.Equal(t, "one ", e.Line())
}

func TestEraseCharacterBackwardsAtColumnZeroIsNoop(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("abc")
	e.cursor = 0

	eraseCharacterBackwards(e)
	assert.Equal(t, "abc", e.Line())
	assert.Equal(t, uint32(0), e.cursor)
}

func TestEraseCharacterForwardsAtEndIsNoop(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("abc")

	eraseCharacterForwards(e)
	assert.Equal(t, "abc", e.Line())
}

func TestTransposeCharactersSwapsAroundCursor(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("abc")
	e.cursor = 1

	transposeCharacters(e)
	assert.Equal(t, "bac", e.Line())
	assert.Equal(t, uint32(2), e.cursor)
}

func TestTransposeWordsSwapsLastTwoWords(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("foo bar baz")

	transposeWords(e)
	assert.Equal(t, "foo baz bar", e.Line())
	assert.Equal(t, uint32(len("foo baz bar")), e.cursor)
}

func TestTransposeWordsWithSingleWordIsNoop(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("only")

	transposeWords(e)
	assert.Equal(t, "only", e.Line())
}

func TestTransposeWordsMidWordTakesSurroundingPair(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("alpha beta gamma")
	e.cursor = uint32(len("alpha be"))

	transposeWords(e)
	assert.Equal(t, "beta alpha gamma", e.Line())
	assert.Equal(t, uint32(len("beta alpha")), e.cursor)
}

func TestInsertThenBackspaceRestoresOriginalState(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("base")
	savedCursor := e.cursor

	e.InsertString("xyz")
	for i := 0; i < 3; i++ {
		eraseCharacterBackwards(e)
	}
	assert.Equal(t, "base", e.Line())
	assert.Equal(t, savedCursor, e.cursor)
}

func TestCursorWordMovement(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.InsertString("one two three")

	cursorLeftWord(e)
	assert.Equal(t, uint32(len("one two ")), e.cursor)

	cursorLeftWord(e)
	assert.Equal(t, uint32(len("one ")), e.cursor)

	goHome(e)
	assert.Equal(t, uint32(0), e.cursor)

	goEnd(e)
	assert.Equal(t, uint32(len("one two three")), e.cursor)
}
