package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCallbackMachineDispatchesSingleKeyBinding(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	fired := false
	m.registerInputCallback([]key{{key: ctrl('X')}}, func([]key, Editor) bool {
		fired = true
		return false
	})

	e := NewEditor()
	m.keyPressed(key{key: ctrl('X')}, e)

	assert.True(t, fired)
	assert.False(t, m.shouldProcessLastPressedKey())
}

func TestKeyCallbackMachineDispatchesMultiKeySequence(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	fired := false
	m.registerInputCallback([]key{{key: ctrl('X')}, {key: ctrl('E')}}, func([]key, Editor) bool {
		fired = true
		return false
	})

	e := NewEditor()
	m.keyPressed(key{key: ctrl('X')}, e)
	assert.False(t, fired, "sequence is not complete yet")
	m.keyPressed(key{key: ctrl('E')}, e)
	assert.True(t, fired)
}

func TestKeyCallbackMachinePassesThroughUnboundKeys(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	e := NewEditor()
	m.keyPressed(key{key: 'a'}, e)
	assert.True(t, m.shouldProcessLastPressedKey())
}

func TestKeyCallbackMachineAbandonsSequenceOnMismatchedSecondKey(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	fired := false
	m.registerInputCallback([]key{{key: ctrl('X')}, {key: ctrl('E')}}, func([]key, Editor) bool {
		fired = true
		return false
	})

	e := NewEditor().(*lineEditor)
	m.keyPressed(key{key: ctrl('X')}, e)
	m.keyPressed(key{key: 'z'}, e)

	assert.False(t, fired)
	assert.True(t, m.shouldProcessLastPressedKey())
	// The abandoned ^X was replayed into the buffer as a literal character.
	assert.Equal(t, string(rune(ctrl('X'))), e.Line())
}

func TestKeyCallbackMachineDoesNotMatchSequenceWithDifferentFirstKey(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	m.registerInputCallback([]key{{key: ctrl('X')}, {key: ctrl('E')}}, func([]key, Editor) bool {
		return false
	})

	// Only the final key matches the bound chord; lookup must treat the
	// sequence as a whole, not per position.
	assert.Nil(t, m.lookupBinding([]key{{key: ctrl('Q')}, {key: ctrl('E')}}))
	assert.NotNil(t, m.lookupBinding([]key{{key: ctrl('X')}, {key: ctrl('E')}}))
}

func TestKeyCallbackMachineReplacesBindingForSameSequence(t *testing.T) {
	m := newKeyCallbackMachine().(*keyCallbackMachineImpl)
	firstFired := false
	secondFired := false
	m.registerInputCallback([]key{{key: ctrl('X')}}, func([]key, Editor) bool {
		firstFired = true
		return false
	})
	m.registerInputCallback([]key{{key: ctrl('X')}}, func([]key, Editor) bool {
		secondFired = true
		return false
	})

	e := NewEditor()
	m.keyPressed(key{key: ctrl('X')}, e)

	assert.False(t, firstFired, "overridden binding must not fire")
	assert.True(t, secondFired)
	assert.Len(t, m.bindings, 1)
}
