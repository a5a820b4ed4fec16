// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/bethropolis/tidemark/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Except for Post, methods must be called from the event loop: from
// command functions, event handlers, or functions passed to Post.
type EditorAPI interface {
	// --- Document ---
	Text() string
	Length() int
	FilePath() string
	IsBufferModified() bool
	ReplaceText(start, end int, text string)

	// --- Caret & Decorations ---
	CursorPosition() int
	MoveCursor(offset int)
	Ranges() []types.Decoration
	Decorations() []types.Decoration
	AddDecoration(d types.Decoration)
	RemoveDecoration(d types.Decoration)
	// NormalizeDecorations drops decorations that have collapsed to a point.
	NormalizeDecorations()

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler) event.Subscription

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Application ---
	SaveBuffer() error
	RequestQuit(force bool)
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
	// Post queues fn to run on the event loop. Safe from any goroutine.
	Post(fn func()) error
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
