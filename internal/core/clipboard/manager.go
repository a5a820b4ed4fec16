// Package clipboard implements copy, cut and paste over an editor's
// selections, using the system clipboard when available.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// System clipboard access, replaceable in tests.
var (
	readSystem  = clipboard.ReadAll
	writeSystem = clipboard.WriteAll
)

// EditorInterface defines methods needed from editor
type EditorInterface interface {
	Ranges() []types.Decoration
	TextByRange(start, end int) string
	Insert(text string)
	Backspace()
}

// Manager handles clipboard operations. The internal register always holds
// the last copied text, so paste works even when the system clipboard
// does not.
type Manager struct {
	editor   EditorInterface
	register string
	system   bool
}

// NewManager creates a clipboard manager. With useSystem set, copies are
// mirrored to the system clipboard and pastes read from it first.
func NewManager(editor EditorInterface, useSystem bool) *Manager {
	return &Manager{
		editor: editor,
		system: useSystem && !clipboard.Unsupported,
	}
}

// Register returns the internal register.
func (m *Manager) Register() string {
	return m.register
}

// Copy stores the text of every selection, joined by newlines. It reports
// false when nothing is selected. A system clipboard failure is returned
// as an error after the register has been filled.
func (m *Manager) Copy() (bool, error) {
	ranges := m.editor.Ranges()
	if len(ranges) == 0 {
		return false, nil
	}

	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = m.editor.TextByRange(r.Start(), r.End())
	}
	m.register = strings.Join(parts, "\n")
	logger.DebugTagf("clipboard", "Copied %d selection(s), %d bytes", len(ranges), len(m.register))

	if m.system {
		if err := writeSystem(m.register); err != nil {
			return true, fmt.Errorf("system clipboard write failed: %w", err)
		}
	}
	return true, nil
}

// Cut copies the selections and then removes them.
func (m *Manager) Cut() (bool, error) {
	ok, err := m.Copy()
	if ok {
		m.editor.Backspace()
	}
	return ok, err
}

// Paste inserts the clipboard text, replacing any selections. It reports
// false when there is nothing to paste.
func (m *Manager) Paste() (bool, error) {
	text := m.register
	if m.system {
		content, err := readSystem()
		if err != nil {
			logger.WarnTagf("clipboard", "System clipboard read failed, using register: %v", err)
		} else if content != "" {
			text = content
		}
	}
	if text == "" {
		return false, nil
	}

	m.editor.Insert(text)
	logger.DebugTagf("clipboard", "Pasted %d bytes", len(text))
	return true, nil
}
