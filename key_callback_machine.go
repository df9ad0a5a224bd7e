package linenoise

func ctrl(k rune) uint32 {
	return uint32(k & 0x3f)
}

// keyCallbackMachineImpl matches incoming keys against the registered
// binding sequences. Multi-key chords (^X^E) are matched incrementally;
// when a partial chord dies, the keys it swallowed are replayed into the
// buffer as literal input.
type keyCallbackMachineImpl struct {
	bindings             []KeyBinding
	currentMatchingKeys  [][]key
	sequenceLength       int
	shouldProcessThisKey bool
}

func newKeyCallbackMachine() keyCallbackMachine {
	return &keyCallbackMachineImpl{}
}

func keysEqual(a, b []key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// registerInputCallback binds a key sequence. A later registration for
// the same sequence replaces the earlier one, so the default binds are
// installed first and host binds override them.
func (k *keyCallbackMachineImpl) registerInputCallback(keys []key, callback KeybindingCallback) {
	for i := range k.bindings {
		if keysEqual(k.bindings[i].keys, keys) {
			k.bindings[i].binding = callback
			return
		}
	}
	k.bindings = append(k.bindings, KeyBinding{keys: keys, binding: callback})
}

func (k *keyCallbackMachineImpl) lookupBinding(keys []key) KeybindingCallback {
	for i := range k.bindings {
		if keysEqual(k.bindings[i].keys, keys) {
			return k.bindings[i].binding
		}
	}
	return nil
}

func (k *keyCallbackMachineImpl) keyPressed(newKey key, editor Editor) {
	if k.sequenceLength == 0 {
		for _, binding := range k.bindings {
			if binding.keys[0] == newKey {
				k.currentMatchingKeys = append(k.currentMatchingKeys, binding.keys)
			}
		}

		if len(k.currentMatchingKeys) == 0 {
			k.shouldProcessThisKey = true
			return
		}
	}

	k.sequenceLength++
	oldMatchingKeys := k.currentMatchingKeys
	k.currentMatchingKeys = nil

	for _, keys := range oldMatchingKeys {
		if len(keys) < k.sequenceLength {
			continue
		}
		if keys[k.sequenceLength-1] == newKey {
			k.currentMatchingKeys = append(k.currentMatchingKeys, keys)
		}
	}

	if len(k.currentMatchingKeys) == 0 {
		// The chord died; replay whatever it swallowed so far.
		if len(oldMatchingKeys) != 0 {
			keys := oldMatchingKeys[0]
			for i := 0; i < k.sequenceLength-1; i++ {
				editor.InsertChar(rune(keys[i].key))
			}
		}
		k.sequenceLength = 0
		k.shouldProcessThisKey = true
		return
	}

	k.shouldProcessThisKey = false
	for _, matchingKeys := range k.currentMatchingKeys {
		if len(matchingKeys) == k.sequenceLength {
			k.shouldProcessThisKey = k.lookupBinding(matchingKeys)(matchingKeys, editor)
			k.sequenceLength = 0
			k.currentMatchingKeys = k.currentMatchingKeys[:0]
			return
		}
	}
}

// interrupted routes ^C through an explicit binding when one exists;
// with none registered the interrupt falls through to the editor's
// default handling.
func (k *keyCallbackMachineImpl) interrupted(editor Editor) {
	k.sequenceLength = 0
	k.currentMatchingKeys = k.currentMatchingKeys[:0]
	seq := []key{{key: ctrl('C')}}
	if binding := k.lookupBinding(seq); binding != nil {
		k.shouldProcessThisKey = binding(seq, editor)
	} else {
		k.shouldProcessThisKey = true
	}
}

func (k *keyCallbackMachineImpl) shouldProcessLastPressedKey() bool {
	return k.shouldProcessThisKey
}
