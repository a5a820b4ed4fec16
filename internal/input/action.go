// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota // Default/invalid action
	ActionQuit                    // Checks for unsaved changes; also cancels prompts
	ActionForceQuit               // Quit without checking modified status
	ActionSave
	ActionReload // Re-read the file, carrying decorations across

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Start of the visual line
	ActionMoveEnd  // End of the visual line
	ActionMoveFileStart
	ActionMoveFileEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter; also confirms prompts
	ActionInsertTab          // Tab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- History / Clipboard ---
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste

	// --- Decorations ---
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline

	// --- Prompts ---
	ActionEnterCommandMode
	ActionEnterFindMode
	ActionFindNext
	ActionFindPrevious
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionReload:             "Reload",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionMoveFileStart:      "MoveFileStart",
	ActionMoveFileEnd:        "MoveFileEnd",
	ActionSelectAll:          "SelectAll",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionToggleBold:         "ToggleBold",
	ActionToggleItalic:       "ToggleItalic",
	ActionToggleUnderline:    "ToggleUnderline",
	ActionEnterCommandMode:   "EnterCommandMode",
	ActionEnterFindMode:      "EnterFindMode",
	ActionFindNext:           "FindNext",
	ActionFindPrevious:       "FindPrevious",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether a moves the caret without editing.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveFileEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	// Shift is set when Shift was held; movements extend the selection.
	Shift bool
}
