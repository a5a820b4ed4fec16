// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/core/clipboard"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/input"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/render"
	"github.com/bethropolis/tidemark/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeFind
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeFind:
		return "FIND"
	default:
		return "NORMAL"
	}
}

// Host is the part of the application the mode handler drives but does
// not own.
type Host interface {
	Save() error
	Reload() error
	Quit()
	IsModified() bool
	// Layout returns the document laid out at the current screen width.
	Layout() *render.Layout
	// PageHeight is the number of visible text lines.
	PageHeight() int
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	clipboard      *clipboard.Manager
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *tui.StatusBar
	host           Host

	currentMode      InputMode
	cmdBuffer        []rune
	findBuffer       []rune
	lastSearchTerm   string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
	// goalX is the column vertical moves aim for; -1 when unset.
	goalX int
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	Clipboard      *clipboard.Manager
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *tui.StatusBar
	Host           Host
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.Clipboard == nil || cfg.InputProcessor == nil ||
		cfg.EventManager == nil || cfg.StatusBar == nil || cfg.Host == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		clipboard:      cfg.Clipboard,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		host:           cfg.Host,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
		goalX:          -1,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	case ModeFind:
		return mh.handleActionFind(actionEvent)
	default:
		logger.Warnf("Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("mode", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, or "".
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

// GetFindBuffer returns the search term being typed, or "".
func (mh *ModeHandler) GetFindBuffer() string {
	if mh.currentMode == ModeFind {
		return string(mh.findBuffer)
	}
	return ""
}
