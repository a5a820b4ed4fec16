// internal/tui/statusbar.go
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	mu             sync.RWMutex
	messageTimeout time.Duration

	filePath   string
	isModified bool
	offset     int
	length     int
	selections int
	language   string

	tempMessage     string
	tempMessageTime time.Time
}

// NewStatusBar creates a status bar whose messages last messageTimeout.
func NewStatusBar(messageTimeout time.Duration) *StatusBar {
	return &StatusBar{messageTimeout: messageTimeout}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the caret offset, text length and selection count.
func (sb *StatusBar) SetCursorInfo(offset, length, selections int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.offset, sb.length, sb.selections = offset, length, selections
}

// SetLanguage updates the highlight language name; "" hides it.
func (sb *StatusBar) SetLanguage(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.language = name
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// defaultText builds the default status line text. Callers hold the lock.
func (sb *StatusBar) defaultText() string {
	path := sb.filePath
	if path == "" {
		path = "[No Name]"
	}
	text := path
	if sb.isModified {
		text += " [Modified]"
	}
	text += fmt.Sprintf(" -- %d/%d", sb.offset, sb.length)
	if sb.selections > 0 {
		text += fmt.Sprintf(" (%d sel)", sb.selections)
	}
	if sb.language != "" {
		text += " -- " + sb.language
	}
	return text
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.messageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	switch {
	case active:
		text, style = sb.tempMessage, activeTheme.GetStyle(theme.StyleStatusBarMessage)
	case sb.isModified:
		text, style = sb.defaultText(), activeTheme.GetStyle(theme.StyleStatusBarDirty)
	default:
		text, style = sb.defaultText(), activeTheme.GetStyle(theme.StyleStatusBar)
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
