package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaskStoresReplacementAsRunes(t *testing.T) {
	m := NewMask("***", MaskModeReplaceEntireSelection)
	assert.Equal(t, []rune("***"), m.replacementView)
	assert.Equal(t, MaskModeReplaceEntireSelection, m.mode)
}

func TestNewMaskSupportsMultiByteReplacement(t *testing.T) {
	m := NewMask("•", MaskModeReplaceEachCodePointInSelection)
	assert.Len(t, m.replacementView, 1)
	assert.Equal(t, MaskModeReplaceEachCodePointInSelection, m.mode)
}
