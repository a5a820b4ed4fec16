// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/tidemark/internal/render"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen   tcell.Screen
	tabWidth int
	top      int // first visible layout line
}

// New creates and initializes a TUI on the terminal.
func New(tabWidth int) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, tabWidth)
}

// NewWithScreen initializes a TUI on an existing screen.
func NewWithScreen(s tcell.Screen, tabWidth int) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return &TUI{screen: s, tabWidth: tabWidth}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues an event for PollEvent. It is safe to call from any
// goroutine.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Sync redraws the whole screen, e.g. after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}

// Layout lays text out at the current screen width.
func (t *TUI) Layout(text string) *render.Layout {
	width, _ := t.screen.Size()
	return render.NewLayout(text, width, t.tabWidth)
}
