package linenoise

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToHistoryAppendsInOrder(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.AddToHistory("first")
	e.AddToHistory("second")
	assert.Equal(t, []string{"first", "second"}, e.HistoryEntries())
	assert.Equal(t, uint32(2), e.HistoryLen())
}

func TestAddToHistorySkipsConsecutiveDuplicatesWhenDedupEnabled(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.SetDedupConsecutiveHistory(true)
	e.AddToHistory("ls")
	e.AddToHistory("ls")
	e.AddToHistory("pwd")
	e.AddToHistory("pwd")
	assert.Equal(t, []string{"ls", "pwd"}, e.HistoryEntries())
}

func TestAddToHistoryKeepsDuplicatesWhenDedupDisabled(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.AddToHistory("ls")
	e.AddToHistory("ls")
	assert.Equal(t, []string{"ls", "ls"}, e.HistoryEntries())
}

func TestHistoryDefaultCapacityDropsOldestEntry(t *testing.T) {
	e := NewEditor().(*lineEditor)
	for i := 0; i <= defaultHistoryCapacity; i++ {
		e.AddToHistory(fmt.Sprintf("cmd-%03d", i))
	}
	assert.Equal(t, uint32(defaultHistoryCapacity), e.HistoryLen())
	assert.Equal(t, "cmd-001", e.HistoryEntries()[0])
	assert.Equal(t, fmt.Sprintf("cmd-%03d", defaultHistoryCapacity), e.HistoryEntries()[defaultHistoryCapacity-1])
}

func TestHistoryCapacityEvictsOldestEntries(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.SetHistoryCapacity(2)
	e.AddToHistory("a")
	e.AddToHistory("b")
	e.AddToHistory("c")
	assert.Equal(t, []string{"b", "c"}, e.HistoryEntries())
}

func TestSetHistoryCapacityTrimsExistingEntries(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.AddToHistory("a")
	e.AddToHistory("b")
	e.AddToHistory("c")
	e.SetHistoryCapacity(1)
	assert.Equal(t, []string{"c"}, e.HistoryEntries())
}

func TestSaveAndLoadHistoryRoundTrips(t *testing.T) {
	e := NewEditor().(*lineEditor)
	e.AddToHistory("alpha")
	e.AddToHistory("beta")

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, e.SaveHistory(path))

	loaded := NewEditor().(*lineEditor)
	require.NoError(t, loaded.LoadHistory(path))
	assert.Equal(t, e.HistoryEntries(), loaded.HistoryEntries())
}

func TestLoadHistoryPropagatesOpenError(t *testing.T) {
	e := NewEditor().(*lineEditor)
	err := e.LoadHistory(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
