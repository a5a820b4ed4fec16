package history

import (
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the editor.
type EditorInterface interface {
	// Restore applies edits verbatim, without running decoration
	// adjustment, then installs decorations and the caret as given.
	Restore(edits []Edit, decorations []types.Decoration, cursor int)
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}
	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "Recorded change with %d edit(s). Index: %d, Count: %d", len(change.Edits), m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change. It returns false when there is
// nothing to undo.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	if m.currentIndex <= 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo.")
		return false
	}
	m.currentIndex--
	change := m.changes[m.currentIndex]
	m.mutex.Unlock()

	inverse := make([]Edit, len(change.Edits))
	for i, e := range change.Edits {
		inverse[len(change.Edits)-1-i] = e.Inverse()
	}
	m.editor.Restore(inverse, change.Before, change.CursorBefore)

	logger.DebugTagf("history", "Undid change %d", m.currentIndex)
	return true
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() bool {
	m.mutex.Lock()
	if m.currentIndex >= len(m.changes) {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo. currentIndex=%d, len(changes)=%d", m.currentIndex, len(m.changes))
		return false
	}
	change := m.changes[m.currentIndex]
	m.currentIndex++
	m.mutex.Unlock()

	m.editor.Restore(change.Edits, change.After, change.CursorAfter)

	logger.DebugTagf("history", "Redid change, new currentIndex=%d", m.currentIndex)
	return true
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
	logger.DebugTagf("history", "Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}
