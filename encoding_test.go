package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEncodingHooksTreatsEveryByteAsOneColumn(t *testing.T) {
	hooks := DefaultEncodingHooks()
	assert.Equal(t, 5, hooks.StrLen("hello"))

	buf := []byte("hello")
	n, cols := hooks.NextCharLen(buf, 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, cols)
}

func TestRuneWidthHooksMeasuresWideCharactersAsTwoColumns(t *testing.T) {
	hooks := RuneWidthHooks()
	wide := "あ" // hiragana A, East Asian Wide
	assert.Equal(t, 2, hooks.StrLen(wide))

	buf := []byte(wide)
	n, cols := hooks.NextCharLen(buf, 0)
	assert.Equal(t, len(wide), n)
	assert.Equal(t, 2, cols)
}

func TestRuneWidthHooksMeasuresAsciiAsOneColumn(t *testing.T) {
	hooks := RuneWidthHooks()
	assert.Equal(t, 5, hooks.StrLen("hello"))
}

func TestRuneWidthHooksPrevCharLenWalksBackOverMultiByteRune(t *testing.T) {
	hooks := RuneWidthHooks()
	buf := []byte("a" + "あ")
	n, cols := hooks.PrevCharLen(buf, len(buf))
	assert.Equal(t, len("あ"), n)
	assert.Equal(t, 2, cols)
}

func TestGraphemeHooksTreatsBaseAndCombiningMarkAsOneCluster(t *testing.T) {
	hooks := GraphemeHooks()
	// "e" followed by U+0301 COMBINING ACUTE ACCENT: two code points,
	// one user-perceived character.
	cluster := "é"
	buf := append([]byte(cluster), 'x')

	n, _ := hooks.NextCharLen(buf, 0)
	assert.Equal(t, len(cluster), n)

	prevN, _ := hooks.PrevCharLen(buf, len(cluster))
	assert.Equal(t, len(cluster), prevN)
}

func TestBoundaryPositionsReturnZero(t *testing.T) {
	hooks := DefaultEncodingHooks()
	buf := []byte("ab")
	n, cols := hooks.PrevCharLen(buf, 0)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, cols)

	n, cols = hooks.NextCharLen(buf, len(buf))
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, cols)
}
