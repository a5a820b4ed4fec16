package modehandler

import (
	"math"

	"github.com/bethropolis/tidemark/internal/input"
	"github.com/bethropolis/tidemark/internal/logger"
)

// Decoration types toggled by the formatting actions.
const (
	TypeBold      = "bold"
	TypeItalic    = "italic"
	TypeUnderline = "underline"
)

var toggleTypes = map[input.Action]string{
	input.ActionToggleBold:      TypeBold,
	input.ActionToggleItalic:    TypeItalic,
	input.ActionToggleUnderline: TypeUnderline,
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	if action != input.ActionMoveUp && action != input.ActionMoveDown &&
		action != input.ActionMovePageUp && action != input.ActionMovePageDown {
		mh.goalX = -1
	}

	if action.IsMovement() {
		before := mh.editor.CursorPosition()
		mh.move(action)
		if actionEvent.Shift {
			mh.extendSelection(before, mh.editor.CursorPosition())
		} else {
			mh.editor.RemoveAllRanges()
		}
		mh.forceQuitPending = false
		return true
	}

	actionProcessed := mh.executeAction(actionEvent)

	if action != input.ActionQuit && action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

// executeAction runs every non-movement action of normal mode.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	// Mode Switching
	case input.ActionEnterCommandMode:
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetTemporaryMessage(":")
		logger.DebugTagf("mode", "ModeHandler: Entering Command Mode")

	case input.ActionEnterFindMode:
		mh.currentMode = ModeFind
		mh.findBuffer = mh.findBuffer[:0]
		mh.statusBar.SetTemporaryMessage("/")
		logger.DebugTagf("mode", "ModeHandler: Entering Find Mode")

	case input.ActionQuit:
		switch {
		case mh.clearSearchMatches():
			mh.statusBar.SetTemporaryMessage("Search matches cleared")
		case mh.host.IsModified() && !mh.forceQuitPending:
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			mh.forceQuitPending = true
		default:
			mh.host.Quit()
			actionProcessed = false
		}
	case input.ActionForceQuit:
		mh.host.Quit()
		actionProcessed = false

	case input.ActionSave:
		if err := mh.host.Save(); err != nil {
			mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
			logger.Warnf("Save failed: %v", err)
		}
	case input.ActionReload:
		if err := mh.host.Reload(); err != nil {
			mh.statusBar.SetTemporaryMessage("Reload FAILED: %v", err)
			logger.Warnf("Reload failed: %v", err)
		}

	case input.ActionFindNext, input.ActionFindPrevious:
		if mh.lastSearchTerm == "" {
			mh.statusBar.SetTemporaryMessage("No previous search term")
			actionProcessed = false
			break
		}
		mh.executeFind(actionEvent.Action == input.ActionFindNext, true)

	case input.ActionSelectAll:
		mh.editor.RemoveAllRanges()
		if mh.editor.Length() > 0 {
			mh.editor.AddRange(0, mh.editor.Length())
		}

	// Clipboard
	case input.ActionCopy:
		copied, err := mh.clipboard.Copy()
		switch {
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copied to register only: %v", err)
		case copied:
			mh.statusBar.SetTemporaryMessage("Text copied to clipboard")
		default:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
			actionProcessed = false
		}
	case input.ActionCut:
		cut, err := mh.clipboard.Cut()
		if err != nil {
			logger.Debugf("Cut: %v", err)
		}
		if !cut {
			mh.statusBar.SetTemporaryMessage("Nothing selected to cut")
			actionProcessed = false
		}
	case input.ActionPaste:
		pasted, err := mh.clipboard.Paste()
		if err != nil {
			logger.Debugf("Paste: %v", err)
		}
		if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}

	// Undo/Redo
	case input.ActionUndo:
		hm := mh.editor.GetHistoryManager()
		if hm == nil || !hm.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			actionProcessed = false
		}
	case input.ActionRedo:
		hm := mh.editor.GetHistoryManager()
		if hm == nil || !hm.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
			actionProcessed = false
		}

	// Text Modification
	case input.ActionInsertRune:
		mh.editor.Insert(string(actionEvent.Rune))
	case input.ActionInsertNewLine:
		mh.editor.Insert("\n")
	case input.ActionInsertTab:
		mh.editor.Insert("\t")
	case input.ActionDeleteCharBackward:
		mh.editor.Backspace()
	case input.ActionDeleteCharForward:
		mh.editor.Delete()

	case input.ActionToggleBold, input.ActionToggleItalic, input.ActionToggleUnderline:
		actionProcessed = mh.toggle(toggleTypes[actionEvent.Action])

	default:
		actionProcessed = false
	}

	return actionProcessed
}

// move performs a caret movement. Vertical moves aim for goalX so a
// run of them keeps its column across short lines.
func (mh *ModeHandler) move(action input.Action) {
	caret := mh.editor.CursorPosition()
	vertical := func(dy int) {
		layout := mh.host.Layout()
		x, y := layout.Position(caret)
		if mh.goalX < 0 {
			mh.goalX = x
		}
		mh.editor.MoveCursor(layout.Offset(mh.goalX, y+dy))
	}
	page := max(mh.host.PageHeight(), 1)

	switch action {
	case input.ActionMoveLeft:
		mh.editor.MoveCursorByGraphemes(-1)
	case input.ActionMoveRight:
		mh.editor.MoveCursorByGraphemes(1)
	case input.ActionMoveUp:
		vertical(-1)
	case input.ActionMoveDown:
		vertical(1)
	case input.ActionMovePageUp:
		vertical(-page)
	case input.ActionMovePageDown:
		vertical(page)
	case input.ActionMoveHome:
		layout := mh.host.Layout()
		_, y := layout.Position(caret)
		mh.editor.MoveCursor(layout.Offset(0, y))
	case input.ActionMoveEnd:
		layout := mh.host.Layout()
		_, y := layout.Position(caret)
		mh.editor.MoveCursor(layout.Offset(math.MaxInt, y))
	case input.ActionMoveFileStart:
		mh.editor.MoveCursor(0)
	case input.ActionMoveFileEnd:
		mh.editor.MoveCursor(mh.editor.Length())
	}
}

// extendSelection grows the selection being dragged by the caret. The
// selection whose focus sat at from keeps its anchor; without one, a new
// selection is anchored at from. All other selections are dropped.
func (mh *ModeHandler) extendSelection(from, to int) {
	anchor := from
	for _, sel := range mh.editor.Ranges() {
		if sel.Focus == from {
			anchor = sel.Anchor
			break
		}
	}
	mh.editor.RemoveAllRanges()
	if anchor == to {
		mh.editor.MoveCursor(to)
		return
	}
	mh.editor.AddRange(anchor, to)
}

// toggle flips typ over every selection.
func (mh *ModeHandler) toggle(typ string) bool {
	ranges := mh.editor.Ranges()
	if len(ranges) == 0 {
		mh.statusBar.SetTemporaryMessage("Select text to apply %s", typ)
		return false
	}
	added := false
	for _, sel := range ranges {
		if mh.editor.ToggleDecoration(typ, sel.Start(), sel.End()) {
			added = true
		}
	}
	if added {
		mh.statusBar.SetTemporaryMessage("Applied %s", typ)
	} else {
		mh.statusBar.SetTemporaryMessage("Removed %s", typ)
	}
	return true
}
