package linenoise

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"unicode"
)

func isAlphaNumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func finish(editor *lineEditor) {
	editor.Finish()
}

func finishEdit(editor *lineEditor) {
	fmt.Fprintf(os.Stdout, "<EOF>\n")
	if !editor.alwaysRefresh {
		editor.inputError = ErrClosed
		editor.Finish()
	}
}

func cursorLeftWord(editor *lineEditor) {
	if editor.cursor > 0 {
		skippedAtLeastOneCharacter := false
		for {
			if editor.cursor == 0 {
				break
			}
			if skippedAtLeastOneCharacter && !isAlphaNumeric(editor.buffer[editor.cursor-1]) {
				break
			}
			skippedAtLeastOneCharacter = true
			editor.cursor--
		}
	}
	editor.inlineSearchCursor = editor.cursor
}
func cursorLeftCharacter(editor *lineEditor) {
	if editor.cursor > 0 {
		editor.cursor--
	}
	editor.inlineSearchCursor = editor.cursor
}
func cursorRightWord(editor *lineEditor) {
	if editor.cursor < uint32(len(editor.buffer)) {
		// Temporarily put a space at the end of the our buffer,
		// doing this greatly simplifies the logic below.
		editor.buffer = append(editor.buffer, ' ')
		for {
			if editor.cursor >= uint32(len(editor.buffer)) {
				break
			}
			editor.cursor++
			if !isAlphaNumeric(editor.buffer[editor.cursor]) {
				break
			}
		}
		editor.buffer = editor.buffer[:len(editor.buffer)-1]
	}
	editor.inlineSearchCursor = editor.cursor
	editor.searchOffset = 0
}
func cursorRightCharacter(editor *lineEditor) {
	if editor.cursor < uint32(len(editor.buffer)) {
		editor.cursor++
	}
	editor.inlineSearchCursor = editor.cursor
	editor.searchOffset = 0
}
func goHome(editor *lineEditor) {
	editor.cursor = 0
	editor.inlineSearchCursor = editor.cursor
	editor.searchOffset = 0
}
func goEnd(editor *lineEditor) {
	editor.cursor = uint32(len(editor.buffer))
	editor.inlineSearchCursor = editor.cursor
	editor.searchOffset = 0
}
func eraseCharacterBackwards(editor *lineEditor) {
	if editor.isSearching {
		return
	}
	if editor.cursor == 0 {
		os.Stderr.Write([]byte("\a"))
		return
	}
	editor.removeAtIndex(editor.cursor - 1)
	editor.cursor--
	editor.inlineSearchCursor = editor.cursor
	editor.refreshNeeded = true
}
func eraseCharacterForwards(editor *lineEditor) {
	if editor.cursor == uint32(len(editor.buffer)) {
		os.Stderr.Write([]byte("\a"))
		return
	}
	editor.removeAtIndex(editor.cursor)
	editor.refreshNeeded = true
}
func eraseAlnumWordBackwards(editor *lineEditor) {
	hasSeenAlnum := false
	for editor.cursor > 0 {
		if !isAlphaNumeric(editor.buffer[editor.cursor-1]) {
			if hasSeenAlnum {
				break
			}
		} else {
			hasSeenAlnum = true
		}
		eraseCharacterBackwards(editor)
	}
}
func eraseAlnumWordForwards(editor *lineEditor) {
	// A word here is contiguous alnums, `foo=bar baz` is three words.
	hasSeenAlnum := false
	for editor.cursor < uint32(len(editor.buffer)) {
		if !isAlphaNumeric(editor.buffer[editor.cursor]) {
			if hasSeenAlnum {
				break
			}
		} else {
			hasSeenAlnum = true
		}
		eraseCharacterForwards(editor)
	}
}
func eraseWordBackwards(editor *lineEditor) {
	hasSeenNonSpace := false
	for editor.cursor > 0 {
		if isSpace(editor.buffer[editor.cursor-1]) {
			if hasSeenNonSpace {
				break
			}
		} else {
			hasSeenNonSpace = true
		}
		eraseCharacterBackwards(editor)
	}
}
func clearScreen(editor *lineEditor) {
	os.Stderr.Write([]byte("\x1b[3J\x1b[H\x1b[2J"))
	vtMoveAbsolute(1, 1, os.Stderr)
	editor.setOriginValue(1, 1)
	editor.refreshNeeded = true
	editor.cachedPromptValid = false
}
func searchForwards(editor *lineEditor) {
	defer func(original uint32) {
		editor.inlineSearchCursor = original
	}(editor.inlineSearchCursor)

	searchPhrase := string(editor.buffer[:editor.inlineSearchCursor])
	if editor.searchOffsetState == searchOffsetStateBackwards {
		editor.searchOffset--
	}
	if editor.searchOffset > 0 {
		original := editor.searchOffset
		defer func() {
			editor.searchOffset = original
		}()
		editor.searchOffset--
		if editor.search(searchPhrase, true, true) {
			editor.searchOffsetState = searchOffsetStateForwards
			original = editor.searchOffset
		} else {
			editor.searchOffsetState = searchOffsetStateUnbiased
		}
	} else {
		editor.searchOffsetState = searchOffsetStateUnbiased
		editor.charsTouchedInTheMiddle = uint32(len(editor.buffer))
		editor.cursor = 0
		editor.buffer = editor.buffer[:0]
		editor.InsertString(searchPhrase)
		editor.refreshNeeded = true
	}
}
func searchBackwards(editor *lineEditor) {
	defer func(original uint32) {
		editor.inlineSearchCursor = original
	}(editor.inlineSearchCursor)

	searchPhrase := string(editor.buffer[:editor.inlineSearchCursor])
	if editor.searchOffsetState == searchOffsetStateForwards {
		editor.searchOffset++
	}
	if editor.search(searchPhrase, true, true) {
		editor.searchOffsetState = searchOffsetStateBackwards
		editor.searchOffset++
	} else {
		editor.searchOffsetState = searchOffsetStateUnbiased
		editor.searchOffset--
	}
}
func eraseToEnd(editor *lineEditor) {
	for editor.cursor < uint32(len(editor.buffer)) {
		eraseCharacterForwards(editor)
	}
}

// searchPromptFor renders the incremental-search prompt for a query.
func searchPromptFor(query string) string {
	return fmt.Sprintf("(reverse-i-search`%s'): ", query)
}

func enterSearch(editor *lineEditor) {
	if editor.isSearching {
		panic("already searching")
	}

	editor.isSearching = true
	editor.searchOffset = 0
	editor.preSearchBuffer = append(editor.preSearchBuffer[:0], editor.buffer...)
	editor.preSearchCursor = editor.cursor

	editor.ensureFreeLinesFromOrigin(editor.NumLines() + 1)

	editor.searchEditor = NewEditor().(*lineEditor)
	editor.searchEditor.enableSignalHandling = false
	editor.searchEditor.alwaysRefresh = true
	editor.searchEditor.Initialize()

	editor.searchEditor.onRefresh = func(_ Editor) {
		// Remove the search editor prompt before updating ourselves (this avoids artifacts when we move the search editor around).
		editor.searchEditor.cleanup()

		searchPhrase := string(editor.searchEditor.buffer)

		// The query lives in the prompt text itself; the buffer still
		// holds it for editing, but a full-span mask keeps it from being
		// rendered twice.
		editor.searchEditor.SetPrompt(searchPromptFor(searchPhrase))
		editor.searchEditor.StripStyles()
		if n := uint32(len(editor.searchEditor.buffer)); n > 0 {
			editor.searchEditor.Stylize(Span{Start: 0, End: n, Mode: SpanModeRune}, Style{
				Mask: NewMask("", MaskModeReplaceEntireSelection),
			})
		}

		if !editor.search(searchPhrase, false, false) {
			editor.charsTouchedInTheMiddle = uint32(len(editor.buffer))
			editor.refreshNeeded = true
			editor.buffer = editor.buffer[:0]
			editor.cursor = 0
		}

		editor.refreshDisplay()

		// Move the search prompt below ours and tell it to redraw itself.
		promptEndLine := editor.CurrentPromptMetrics().LinesWithAddition(&editor.cachedBufferMetrics, editor.numColumns)
		editor.searchEditor.setOriginValue(promptEndLine+editor.originRow, 1)
		editor.searchEditor.refreshNeeded = true
	}

	// Whenever the search editor gets a ^R, cycle between history entries.
	editor.searchEditor.RegisterKeybinding([]key{{key: ctrl('R')}}, func(_ []key, _ Editor) bool {
		editor.searchOffset++
		editor.searchEditor.refreshNeeded = true
		return false // Don't process this key event
	})

	// ^C should cancel the search.
	editor.searchEditor.RegisterKeybinding([]key{{key: ctrl('C')}}, func(_ []key, _ Editor) bool {
		editor.searchEditor.Finish()
		editor.resetBufferOnSearchEnd = true
		editor.searchEditor.endSearch()
		editor.searchEditor.loopChan <- loopExitCodeExit
		return false
	})

	// ^L - This is a source of issues, as the search editor refreshes first,
	// and we end up with the wrong order of prompts, so we will first refresh
	// ourselves, and then refresh the search editor, and tell it not to process
	// this event.
	editor.searchEditor.RegisterKeybinding([]key{{key: ctrl('L')}}, func(_ []key, _ Editor) bool {
		// Clear screen
		os.Stderr.Write([]byte("\x1b[3J\x1b[H\x1b[2J"))

		// Refresh our own prompt
		editor.alwaysRefresh = true
		editor.setOriginValue(1, 1)
		editor.refreshNeeded = true
		editor.refreshDisplay()
		editor.alwaysRefresh = false

		// Move the search prompt below ours and tell it to redraw itself.
		promptEndLine := editor.CurrentPromptMetrics().LinesWithAddition(&editor.cachedPromptMetrics, editor.numLines)
		editor.searchEditor.setOriginValue(promptEndLine+editor.originRow, 1)
		editor.searchEditor.refreshNeeded = true
		return false
	})

	// \t, Quit without clearing the curren buffer.
	editor.searchEditor.RegisterKeybinding([]key{{key: '\t'}}, func(_ []key, _ Editor) bool {
		editor.searchEditor.Finish()
		editor.resetBufferOnSearchEnd = false
		return false
	})

	// While the search editor is active, we do not want editing events.
	editor.isEditing = false

	// We still want to process signals, so spin up a goroutine here that handles them.
	stopChan := make(chan struct{})
	defer close(stopChan)
	go func() {
		for {
			select {
			case <-stopChan:
				return
			case sig := <-editor.signalChan:
				if sig == syscall.SIGWINCH {
					editor.resized()
				} else if sig == syscall.SIGINT {
					editor.interrupted()
				}
			}
		}
	}()

	searchStringResult, err := editor.searchEditor.GetLine(searchPromptFor(""))

	// Stop the goroutine that handles signals since we'll be returning to our own loop.
	stopChan <- struct{}{}

	// Grab where the search origin last was, anything up to this point will be cleared.
	searchEndRow := editor.searchEditor.originRow

	editor.searchEditor = nil
	editor.isSearching = false
	editor.isEditing = true
	editor.searchOffset = 0

	if err != nil {
		// Something broke, fail.
		editor.inputError = err
		editor.Finish()
		return
	}

	// Manually cleanup the search line. The rendered line was the prompt
	// with the query folded in, followed by a masked (invisible) buffer.
	editor.repositionCursor(os.Stderr, false)
	searchMetrics := editor.ActualRenderedStringMetrics("")
	promptMetrics := editor.ActualRenderedStringMetrics(searchPromptFor(searchStringResult))
	vtClearLines(0, promptMetrics.LinesWithAddition(&searchMetrics, editor.numLines)+searchEndRow-editor.originRow-1, os.Stderr)

	editor.repositionCursor(os.Stderr, false)
	editor.refreshNeeded = true
	editor.cachedPromptValid = false
	editor.charsTouchedInTheMiddle = 1

	if !editor.resetBufferOnSearchEnd || len(searchStringResult) == 0 {
		// If the search entry was empty or we purposely quit without a newline,
		// do not return anything; instead, just end the search.
		editor.endSearch()
		return
	}

	// Otherwise, return the result
	editor.Finish()
}
func transposeCharacters(editor *lineEditor) {
	if editor.cursor > 0 && len(editor.buffer) >= 2 {
		if editor.cursor < uint32(len(editor.buffer)) {
			editor.cursor++
		}
		t := editor.buffer[editor.cursor-1]
		editor.buffer[editor.cursor-1] = editor.buffer[editor.cursor-2]
		editor.buffer[editor.cursor-2] = t
		editor.refreshNeeded = true
		editor.charsTouchedInTheMiddle += 2
	}
}
func editInExternalEditor(editor *lineEditor) {
	command := os.Getenv("EDITOR")
	if command == "" {
		command = "vi"
	}

	f, err := os.CreateTemp("", "line-*.txt")
	if err != nil {
		editor.logger.WithError(err).Error("external edit: creating scratch file")
		return
	}
	path := f.Name()
	defer os.Remove(path)

	_, err = f.WriteString(string(editor.buffer))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		editor.logger.WithError(err).Error("external edit: writing scratch file")
		return
	}

	// Hand the terminal back to its default state for the duration of
	// the child, then re-enter our raw mode.
	_ = setTermios(&editor.defaultTermios)
	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()
	_ = setTermios(&editor.termios)

	editor.refreshNeeded = true
	editor.cachedPromptValid = false
	editor.charsTouchedInTheMiddle = uint32(len(editor.buffer))

	if runErr != nil {
		editor.logger.WithError(runErr).Error("external edit: editor exited with failure")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		editor.logger.WithError(err).Error("external edit: reading scratch file back")
		return
	}
	line := strings.TrimSuffix(string(data), "\n")
	line = strings.TrimSuffix(line, "\r")
	editor.SetLine(line)
}

type caseChangeOp int

const (
	caseChangeOpCapital caseChangeOp = iota
	caseChangeOpLower
	caseChangeOpUpper
)

func caseChangeWord(editor *lineEditor, op caseChangeOp) {
	// A word here is contiguous alnums.
	for editor.cursor < uint32(len(editor.buffer)) && !isAlphaNumeric(editor.buffer[editor.cursor]) {
		editor.cursor++
	}
	start := editor.cursor
	for editor.cursor < uint32(len(editor.buffer)) && isAlphaNumeric(editor.buffer[editor.cursor]) {
		if op == caseChangeOpUpper || (op == caseChangeOpCapital && editor.cursor == start) {
			editor.buffer[editor.cursor] = unicode.ToUpper(editor.buffer[editor.cursor])
		} else {
			editor.buffer[editor.cursor] = unicode.ToLower(editor.buffer[editor.cursor])
		}
		editor.cursor++
		editor.refreshNeeded = true
	}
}

func capitalizeWord(editor *lineEditor) {
	caseChangeWord(editor, caseChangeOpCapital)
}
func lowercaseWord(editor *lineEditor) {
	caseChangeWord(editor, caseChangeOpLower)
}
func uppercaseWord(editor *lineEditor) {
	caseChangeWord(editor, caseChangeOpUpper)
}
func killLine(editor *lineEditor) {
	for len(editor.buffer) > 0 {
		editor.removeAtIndex(0)
	}
	editor.cursor = 0
	editor.inlineSearchCursor = 0
	editor.refreshNeeded = true
}
func transposeWords(editor *lineEditor) {
	// Swap the alnum word at or before the cursor with the word before
	// that, leaving the cursor after the pair.
	buf := editor.buffer

	end2 := editor.cursor
	for end2 < uint32(len(buf)) && isAlphaNumeric(buf[end2]) {
		end2++
	}
	for end2 > 0 && !isAlphaNumeric(buf[end2-1]) {
		end2--
	}
	start2 := end2
	for start2 > 0 && isAlphaNumeric(buf[start2-1]) {
		start2--
	}
	end1 := start2
	for end1 > 0 && !isAlphaNumeric(buf[end1-1]) {
		end1--
	}
	start1 := end1
	for start1 > 0 && isAlphaNumeric(buf[start1-1]) {
		start1--
	}

	if start1 == end1 || start2 == end2 {
		return
	}

	swapped := append([]rune{}, buf[:start1]...)
	swapped = append(swapped, buf[start2:end2]...)
	swapped = append(swapped, buf[end1:start2]...)
	swapped = append(swapped, buf[start1:end1]...)
	swapped = append(swapped, buf[end2:]...)

	editor.buffer = swapped
	editor.cursor = end2
	editor.inlineSearchCursor = editor.cursor
	editor.refreshNeeded = true
	editor.charsTouchedInTheMiddle += end2 - start1
}
func insertLastWords(editor *lineEditor) {
	if len(editor.history) == 0 {
		return
	}

	// FIXME: This isn't quite right, if the last arg was `"foo bar"` or `foo\ bar` (but not `foo\\ bar`), we should insert that whole arg as last token.
	lastWords := strings.Split(editor.history[len(editor.history)-1].entry, " ")
	if len(lastWords) != 0 {
		editor.InsertString(lastWords[len(lastWords)-1])
	}
}
