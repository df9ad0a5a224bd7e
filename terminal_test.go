package linenoise

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistedTermMatchesKnownBadTerminals(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.True(t, isBlacklistedTerm())

	t.Setenv("TERM", "DUMB")
	assert.True(t, isBlacklistedTerm())

	t.Setenv("TERM", "cons25")
	assert.True(t, isBlacklistedTerm())

	t.Setenv("TERM", "xterm-256color")
	assert.False(t, isBlacklistedTerm())
}

func TestEmptyTermIsBlacklisted(t *testing.T) {
	t.Setenv("TERM", "")
	assert.True(t, isBlacklistedTerm())
}

func TestNonTerminalDescriptorIsUnsupported(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.True(t, IsUnsupportedTerminal(int(r.Fd())))
}

func TestBlacklistedTermOverridesDescriptorCheck(t *testing.T) {
	t.Setenv("TERM", "dumb")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.True(t, IsUnsupportedTerminal(int(r.Fd())))
}
