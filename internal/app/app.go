// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bethropolis/tidemark/internal/commands"
	"github.com/bethropolis/tidemark/internal/config"
	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/core/clipboard"
	"github.com/bethropolis/tidemark/internal/core/history"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/highlight"
	"github.com/bethropolis/tidemark/internal/input"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/modehandler"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/bethropolis/tidemark/internal/tui"
	"github.com/gdamore/tcell/v2"
)

var errClosed = errors.New("application is shutting down")

// App encapsulates the core components and main loop of the editor.
//
// Everything that touches the editor runs on the goroutine calling Run.
// Background work (highlighting, plugin timers) reaches it by posting
// interrupt events to the screen's queue.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *tui.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	clipboard     *clipboard.Manager
	highlighter   *highlight.Manager
	editorAPI     plugin.EditorAPI

	filePath  string
	savedText string

	// scheduled is the newest highlight pass requested, applied the
	// newest one whose decorations are in the editor.
	scheduled uint64
	applied   uint64

	quitting bool
	closed   atomic.Bool
}

// NewApp creates the application on the terminal and loads filePath.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New(cfg.Editor.TabWidth)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI) (*App, error) {
	eventManager := event.NewManager()

	editor := core.NewEditor()
	editor.SetEventManager(eventManager)
	editor.SetHistoryManager(history.NewManager(editor, cfg.Editor.MaxHistory))

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     tui.NewStatusBar(config.MessageTimeout),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  newThemeManager(cfg),
		clipboard:     clipboard.NewManager(editor, cfg.Editor.SystemClipboard),
	}
	a.highlighter = highlight.NewManager(highlight.NewHighlighter(), cfg.Editor.HighlightDelay(), a.deliverHighlights)

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		Clipboard:      a.clipboard,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		Host:           a,
	})
	a.editorAPI = newEditorAPI(a)

	a.subscribe()
	commands.RegisterAppCommands(a.editorAPI)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}

	if err := a.load(filePath); err != nil {
		a.highlighter.Shutdown()
		return nil, err
	}

	a.pluginManager.InitializePlugins(a.editorAPI)
	return a, nil
}

// newThemeManager loads the themes directory, then the configured theme
// file, then selects the configured theme by name. Failures fall back to
// the built-in theme.
func newThemeManager(cfg *config.Config) *theme.Manager {
	m := theme.NewManager()
	if dir, err := config.ThemesDir(); err == nil {
		if n, err := m.LoadThemesFromDir(dir); err != nil {
			logger.Warnf("App: themes directory: %v", err)
		} else {
			logger.Debugf("App: loaded %d themes from %s", n, dir)
		}
	}
	if cfg.Theme.Path != "" {
		if _, err := m.LoadFile(cfg.Theme.Path); err != nil {
			logger.Warnf("App: theme file: %v", err)
		}
	}
	if cfg.Theme.Name != "" {
		if err := m.SetTheme(cfg.Theme.Name); err != nil {
			logger.Warnf("App: %v", err)
		}
	}
	return m
}

// Run processes terminal events until the user quits.
func (a *App) Run() error {
	defer a.shutdown()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Tidemark - Ctrl+S Save | Ctrl+P Command | ESC Quit")
	a.draw()

	for !a.quitting {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break
		}
		if a.handleEvent(ev) && !a.quitting {
			a.draw()
		}
	}
	return nil
}

// handleEvent reacts to one terminal event and reports whether the screen
// needs redrawing.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		a.modeHandler.HandleKeyEvent(ev)
		return true
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case func():
			data()
		case highlight.Result:
			a.applyHighlights(data)
		default:
			logger.Warnf("App: unexpected interrupt payload %T", data)
			return false
		}
		return true
	}
	return false
}

// post queues payload as an interrupt for the event loop. Safe from any
// goroutine.
func (a *App) post(payload interface{}) error {
	if a.closed.Load() {
		return errClosed
	}
	return a.tuiManager.PostEvent(tcell.NewEventInterrupt(payload))
}

func (a *App) shutdown() {
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	a.closed.Store(true)
	a.pluginManager.ShutdownPlugins()
	a.highlighter.Shutdown()
	a.tuiManager.Close()
	if a.IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("Exiting application.")
}

// Quit stops the event loop after the current event.
func (a *App) Quit() {
	a.quitting = true
}
