// Package event is a small synchronous publish/subscribe bus connecting the
// document model to the outer layers (highlighting, rendering, the app loop).
package event

import (
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified     // text changed through a committed replacement
	TypeBufferLoaded       // text replaced wholesale (file load, reload)
	TypeBufferSaved        // text written to disk
	TypeCursorMoved        // caret offset changed
	TypeDecorationsChanged // decorations added, removed or replaced directly

	// Input
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeDecorationsChanged:
		return "DecorationsChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes one committed replacement.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData names the source of freshly loaded text. FilePath is
// empty for text set programmatically.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData names the file that was written.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the caret offset after the move.
type CursorMovedData struct {
	Offset int
}

// DecorationsChangedData carries the decoration types that changed.
type DecorationsChangedData struct {
	Types []string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
