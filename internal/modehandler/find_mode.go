package modehandler

import (
	"slices"

	"github.com/bethropolis/tidemark/internal/input"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// Search matches are stored as decorations so they follow edits and get
// drawn like any other markup.
const (
	SearchPrefix    = "search."
	TypeSearchMatch = SearchPrefix + "match"
)

// handleActionFind handles actions when in ModeFind.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.findBuffer = append(mh.findBuffer, actionEvent.Rune)
		needsUpdate = true

	case input.ActionDeleteCharBackward:
		if len(mh.findBuffer) > 0 {
			mh.findBuffer = mh.findBuffer[:len(mh.findBuffer)-1]
			needsUpdate = true
		} else {
			mh.cancelFindMode()
		}

	case input.ActionInsertNewLine:
		mh.currentMode = ModeNormal
		if len(mh.findBuffer) > 0 {
			mh.lastSearchTerm = string(mh.findBuffer)
			mh.executeFind(true, false)
		} else {
			mh.clearSearchMatches()
			mh.statusBar.ResetTemporaryMessage()
		}
		mh.findBuffer = mh.findBuffer[:0]

	case input.ActionQuit:
		mh.cancelFindMode()

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.currentMode == ModeFind {
		mh.statusBar.SetTemporaryMessage("/%s", string(mh.findBuffer))
	}
	return actionProcessed
}

// cancelFindMode leaves Find mode without searching.
func (mh *ModeHandler) cancelFindMode() {
	mh.currentMode = ModeNormal
	mh.findBuffer = mh.findBuffer[:0]
	mh.clearSearchMatches()
	mh.statusBar.ResetTemporaryMessage()
	logger.DebugTagf("mode", "ModeHandler: Canceled Find Mode")
}

// clearSearchMatches drops the match decorations, reporting whether any
// were present.
func (mh *ModeHandler) clearSearchMatches() bool {
	if len(mh.editor.DecorationsByType(TypeSearchMatch)) == 0 {
		return false
	}
	mh.editor.ReplaceDecorationsByPrefix(SearchPrefix, nil)
	return true
}

// executeFind marks every occurrence of lastSearchTerm and moves the caret
// to the next one in the given direction, wrapping around the document.
// The first search of a term may land on a match at the caret; repeats
// always move past it.
func (mh *ModeHandler) executeFind(forward bool, isSubsequent bool) {
	term := []rune(mh.lastSearchTerm)
	matches := findMatches(mh.editor.Characters(), term)

	ds := make([]types.Decoration, len(matches))
	for i, at := range matches {
		ds[i] = types.NewDecoration(TypeSearchMatch, at, at+len(term))
	}
	mh.editor.ReplaceDecorationsByPrefix(SearchPrefix, ds)

	if len(matches) == 0 {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", mh.lastSearchTerm)
		logger.DebugTagf("mode", "ModeHandler: Pattern not found: '%s'", mh.lastSearchTerm)
		return
	}

	idx := nextMatch(matches, mh.editor.CursorPosition(), forward, isSubsequent)
	mh.editor.RemoveAllRanges()
	mh.editor.MoveCursor(matches[idx])
	mh.statusBar.SetTemporaryMessage("Match %d of %d: '%s'", idx+1, len(matches), mh.lastSearchTerm)
	logger.DebugTagf("mode", "ModeHandler: Found '%s' at %d", mh.lastSearchTerm, matches[idx])
}

// findMatches returns the start of every non-overlapping occurrence of
// term in text.
func findMatches(text, term []rune) []int {
	if len(term) == 0 {
		return nil
	}
	var matches []int
	for i := 0; i+len(term) <= len(text); {
		if slices.Equal(text[i:i+len(term)], term) {
			matches = append(matches, i)
			i += len(term)
			continue
		}
		i++
	}
	return matches
}

// nextMatch picks the index of the match to jump to from caret. matches
// must be sorted and non-empty.
func nextMatch(matches []int, caret int, forward, strict bool) int {
	if forward {
		for i, at := range matches {
			if at > caret || (!strict && at == caret) {
				return i
			}
		}
		return 0
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i] < caret || (!strict && matches[i] == caret) {
			return i
		}
	}
	return len(matches) - 1
}
