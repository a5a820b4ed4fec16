// Package core is the document model: a code point buffer, a scalar caret,
// selections and typed decorations that follow the text as it is edited.
//
// An Editor is not safe for concurrent use. Callers serialize access.
package core

import (
	"github.com/bethropolis/tidemark/internal/buffer"
	"github.com/bethropolis/tidemark/internal/core/decoration"
	"github.com/bethropolis/tidemark/internal/core/history"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

type Editor struct {
	buffer      *buffer.RuneBuffer
	decorations *decoration.Manager
	cursor      int

	eventManager   *event.Manager
	historyManager *history.Manager

	// Undo grouping: the outermost public mutation opens a change and
	// every primitive replacement below it appends to it.
	depth   int
	pending *history.Change
}

// NewEditor creates an empty editor.
func NewEditor() *Editor {
	e := &Editor{}
	e.Initialize()
	return e
}

// Initialize restores the empty state. Attached event and history
// managers are kept.
func (e *Editor) Initialize() {
	e.buffer = buffer.NewRuneBuffer()
	e.decorations = decoration.NewManager(decoration.NewStore())
	e.cursor = 0
	e.depth = 0
	e.pending = nil
	if e.historyManager != nil {
		e.historyManager.Clear()
	}
}

// Dispose restores the empty state and detaches all collaborators.
func (e *Editor) Dispose() {
	e.eventManager = nil
	e.historyManager = nil
	e.Initialize()
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the attached event manager, if any.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// SetHistoryManager attaches an undo/redo stack. Every later mutation
// records a change into it.
func (e *Editor) SetHistoryManager(mgr *history.Manager) {
	e.historyManager = mgr
}

// GetHistoryManager returns the attached history manager, if any.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// GetBuffer returns the underlying buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// SetText replaces the whole document. The caret returns to 0 and every
// decoration, selection and recorded change is dropped.
func (e *Editor) SetText(text string) {
	e.buffer.Set(text)
	e.cursor = 0
	e.decorations.Reset()
	if e.historyManager != nil {
		e.historyManager.Clear()
	}
	logger.DebugTagf("core", "SetText: %d code points", e.buffer.Len())
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{})
}

// Text returns the document.
func (e *Editor) Text() string {
	return e.buffer.String()
}

// Length returns the number of code points in the document.
func (e *Editor) Length() int {
	return e.buffer.Len()
}

// Characters returns a copy of the document's code points.
func (e *Editor) Characters() []rune {
	return e.buffer.Runes()
}

func (e *Editor) dispatch(eventType event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(eventType, data)
	}
}

// begin opens an undo group. Calls nest; only the outermost one counts.
func (e *Editor) begin() {
	e.depth++
	if e.depth == 1 && e.historyManager != nil {
		e.pending = &history.Change{
			CursorBefore: e.cursor,
			Before:       e.decorations.Store().All(),
		}
	}
}

// commit closes an undo group and records it if any text changed.
func (e *Editor) commit() {
	e.depth--
	if e.depth > 0 || e.pending == nil {
		return
	}
	change := e.pending
	e.pending = nil
	if len(change.Edits) == 0 || e.historyManager == nil {
		return
	}
	change.CursorAfter = e.cursor
	change.After = e.decorations.Store().All()
	e.historyManager.RecordChange(*change)
}

// Restore applies edits to the text without adjusting decorations, then
// installs decorations and the caret verbatim. Placement history starts
// over. It is the entry point for undo and redo.
func (e *Editor) Restore(edits []history.Edit, decorations []types.Decoration, cursor int) {
	for _, ed := range edits {
		info := e.buffer.Splice(ed.Start, ed.Start+len(ed.Removed), ed.Inserted)
		e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: info})
	}
	e.decorations.Reset()
	for _, d := range decorations {
		e.addDecoration(d)
	}
	e.cursor = types.ClampOffset(cursor, e.buffer.Len())
	logger.DebugTagf("core", "Restore: %d edit(s), %d decorations, caret %d", len(edits), len(decorations), e.cursor)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: e.cursor})
}

// Ensure Editor can drive a history manager.
var _ history.EditorInterface = (*Editor)(nil)
