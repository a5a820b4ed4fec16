// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps key events to editor actions.
type Keymap map[tcell.Key]Action
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys (Shift allowed) ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyF3] = ActionFindNext

	// --- Control Keys (tcell reports these as their own key codes) ---
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlR] = ActionReload
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlB] = ActionToggleBold
	p.keymap[tcell.KeyCtrlE] = ActionToggleItalic // Ctrl+I is Tab
	p.keymap[tcell.KeyCtrlU] = ActionToggleUnderline
	p.keymap[tcell.KeyCtrlP] = ActionEnterCommandMode
	p.keymap[tcell.KeyCtrlF] = ActionEnterFindMode

	// --- Modifier + Key ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyHome] = ActionMoveFileStart
	ctrlMap[tcell.KeyEnd] = ActionMoveFileEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyF3] = ActionFindPrevious
	p.modKeymap[tcell.ModShift] = shiftMap
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Prompt modes are not handled here; the mode handler interprets the action.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0

	// 1. Modifier + Key combinations, exact match first
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	if modKeyMap, ok := p.modKeymap[mod&^tcell.ModShift]; ok && mod&^tcell.ModShift != tcell.ModNone {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action, Shift: shift}
		}
	}

	// The Ctrl key codes already imply Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Plain keys; Shift extends movements
	if mod&^tcell.ModShift == tcell.ModNone {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Shift: shift}
		}
	}

	// 3. Text
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
