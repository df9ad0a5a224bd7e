package linenoise

// MaskMode selects how a Mask replaces the code points spanned by a
// styled selection: as a whole (password-style single placeholder) or
// one-for-one per code point (fixed-width redaction).
type MaskMode int

const (
	// MaskModeReplaceEntireSelection renders the whole masked span as a
	// single replacement string regardless of how many code points it
	// covers.
	MaskModeReplaceEntireSelection MaskMode = iota
	// MaskModeReplaceEachCodePointInSelection renders the replacement
	// string once per code point in the masked span, so the on-screen
	// width tracks the underlying content's length.
	MaskModeReplaceEachCodePointInSelection
)

// Mask is attached to a Style via Style.Mask to redact a span of the
// buffer on screen without altering the underlying bytes: the cursor,
// history, and accepted line all see the real content, only refreshDisplay
// substitutes the replacement view.
type Mask struct {
	mode            MaskMode
	replacementView []rune
}

// NewMask builds a Mask that substitutes replacement for the styled span,
// per mode. An empty replacement masks the span as blank.
func NewMask(replacement string, mode MaskMode) *Mask {
	return &Mask{
		mode:            mode,
		replacementView: []rune(replacement),
	}
}
