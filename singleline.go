package linenoise

import (
	"bytes"
	"fmt"
	"os"
)

// SetMultilineMode selects the refresh strategy. The default, multi-line,
// lets the edited line wrap across terminal rows. In single-line mode
// the line never wraps: the view scrolls horizontally over the buffer so
// the cursor stays visible on the prompt row, and styling spans are not
// rendered.
func (l *lineEditor) SetMultilineMode(multiline bool) {
	l.multilineMode = multiline
	l.viewStart = 0
	l.refreshNeeded = true
}

// promptColumns is the visible width of the prompt's last line, with
// recognized escape sequences excluded by the VT metrics pass. Computed
// from the prompt itself rather than the cached metrics, which are only
// validated by the multi-line refresh path.
func (l *lineEditor) promptColumns() uint32 {
	m := l.ActualRenderedStringMetrics(l.newPrompt)
	if len(m.LineMetrics) == 0 {
		return 0
	}
	return m.LineMetrics[len(m.LineMetrics)-1].TotalLength(-1)
}

// scrollViewToCursor advances or rewinds viewStart until the cursor falls
// inside the visible window, and returns the end of the visible slice.
func (l *lineEditor) scrollViewToCursor(promptCols, columns uint32) uint32 {
	if l.cursor < l.viewStart {
		l.viewStart = l.cursor
	}
	for promptCols+(l.cursor-l.viewStart) >= columns {
		l.viewStart++
	}

	visibleEnd := uint32(len(l.buffer))
	if visibleEnd < l.viewStart {
		visibleEnd = l.viewStart
	}
	if promptCols+(visibleEnd-l.viewStart) > columns {
		visibleEnd = l.viewStart + columns - promptCols
	}
	return visibleEnd
}

func (l *lineEditor) refreshSingleLine() {
	columns := l.numColumns
	if columns == 0 {
		columns = 80
	}
	promptCols := l.promptColumns()
	visibleEnd := l.scrollViewToCursor(promptCols, columns)

	out := bytes.NewBuffer(nil)
	out.WriteString("\r")
	out.WriteString(l.newPrompt)
	out.WriteString(string(l.buffer[l.viewStart:visibleEnd]))
	out.WriteString("\x1b[0K")
	out.WriteString("\r")
	if move := promptCols + (l.cursor - l.viewStart); move > 0 {
		fmt.Fprintf(out, "\x1b[%dC", move)
	}
	_, _ = os.Stderr.Write(out.Bytes())

	l.pendingChars = nil
	l.drawnCursor = l.cursor
	l.drawnEndOfLineOffset = uint32(len(l.buffer))
	l.cachedBufferMetrics = l.actualRenderedStringMetricsImpl(string(l.buffer), l.currentMasks)
	l.cachedPromptValid = true
	l.refreshNeeded = false
}

// repositionCursorSingleLine is the single-line counterpart of
// repositionCursor: everything lives on one row, so only the column
// needs adjusting.
func (l *lineEditor) repositionCursorSingleLine(toEnd bool) {
	cursor := l.cursor
	if toEnd {
		cursor = uint32(len(l.buffer))
	}
	if cursor < l.viewStart {
		l.viewStart = cursor
	}
	promptCols := l.promptColumns()
	out := bytes.NewBuffer(nil)
	out.WriteString("\r")
	if move := promptCols + (cursor - l.viewStart); move > 0 {
		fmt.Fprintf(out, "\x1b[%dC", move)
	}
	_, _ = os.Stderr.Write(out.Bytes())
	l.drawnCursor = cursor
}
