package linenoise

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// EncodingHooks is the pluggable measurement vtable for column-width and
// code-point arithmetic: prev/next char length in bytes and columns, and
// the printable column length of a string. There is no hook for reading a
// code point from a descriptor. The editor itself calls only StrLen, one
// rune at a time, to size the rendered line (a rune measured as zero
// columns is still charged one); cursor movement and deletion step one
// rune and do not call PrevCharLen or NextCharLen. The zero value is never
// used directly; obtain one of the constructors below.
type EncodingHooks struct {
	// PrevCharLen returns the byte length and column width of the code
	// point immediately before byte offset pos in buf.
	PrevCharLen func(buf []byte, pos int) (bytes int, cols int)
	// NextCharLen returns the byte length and column width of the code
	// point starting at byte offset pos in buf.
	NextCharLen func(buf []byte, pos int) (bytes int, cols int)
	// StrLen returns the printable-column length of s.
	StrLen func(s string) int
}

// DefaultEncodingHooks treats every byte as one column, per spec: no
// Unicode awareness, no grapheme clustering. This is what a session uses
// unless SetEncodingHooks is called.
func DefaultEncodingHooks() EncodingHooks {
	return EncodingHooks{
		PrevCharLen: func(buf []byte, pos int) (int, int) {
			if pos <= 0 {
				return 0, 0
			}
			return 1, 1
		},
		NextCharLen: func(buf []byte, pos int) (int, int) {
			if pos >= len(buf) {
				return 0, 0
			}
			return 1, 1
		},
		StrLen: func(s string) int { return len(s) },
	}
}

// RuneWidthHooks returns East-Asian-width-aware hooks backed by
// github.com/mattn/go-runewidth, operating one UTF-8 rune at a time. This
// widens the default byte-per-column model to handle wide CJK glyphs and
// zero-width combining marks, and its PrevCharLen/NextCharLen step over a
// whole multi-byte rune instead of a single byte.
func RuneWidthHooks() EncodingHooks {
	cond := runewidth.NewCondition()
	return EncodingHooks{
		PrevCharLen: func(buf []byte, pos int) (int, int) {
			if pos <= 0 {
				return 0, 0
			}
			start := pos - 1
			for start > 0 && isUTF8Continuation(buf[start]) {
				start--
			}
			r := decodeRune(buf[start:pos])
			return pos - start, cond.RuneWidth(r)
		},
		NextCharLen: func(buf []byte, pos int) (int, int) {
			if pos >= len(buf) {
				return 0, 0
			}
			n := 1
			for pos+n < len(buf) && isUTF8Continuation(buf[pos+n]) {
				n++
			}
			r := decodeRune(buf[pos : pos+n])
			return n, cond.RuneWidth(r)
		},
		StrLen: func(s string) int { return cond.StringWidth(s) },
	}
}

// GraphemeHooks uses github.com/rivo/uniseg's grapheme-cluster
// segmentation and width tables, so that PrevCharLen/NextCharLen step over
// one user-perceived character even when it is built from a base rune plus
// combining marks or a multi-rune ZWJ emoji sequence. The editor's own
// edit operations do not use these steps (see EncodingHooks).
func GraphemeHooks() EncodingHooks {
	return EncodingHooks{
		PrevCharLen: func(buf []byte, pos int) (int, int) {
			if pos <= 0 {
				return 0, 0
			}
			// Walk clusters from the start; this is O(n) per call, which
			// is acceptable for interactive line lengths and keeps the
			// implementation simple and obviously correct.
			state := -1
			offset := 0
			lastLen, lastCols := 0, 0
			for offset < pos {
				cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(string(buf[offset:]), state)
				_ = rest
				state = newState
				lastLen = len(cluster)
				lastCols = width
				offset += lastLen
			}
			if lastLen == 0 {
				lastLen, lastCols = 1, 1
			}
			return lastLen, lastCols
		},
		NextCharLen: func(buf []byte, pos int) (int, int) {
			if pos >= len(buf) {
				return 0, 0
			}
			cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(string(buf[pos:]), -1)
			if len(cluster) == 0 {
				return 1, 1
			}
			return len(cluster), width
		},
		StrLen: func(s string) int { return uniseg.StringWidth(s) },
	}
}

func isUTF8Continuation(b byte) bool { return b&0xC0 == 0x80 }

func decodeRune(b []byte) rune {
	for _, r := range string(b) {
		return r
	}
	return 0
}
