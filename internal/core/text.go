package core

import (
	"github.com/bethropolis/tidemark/internal/core/history"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// ReplaceText replaces [start, end) with text. Offsets are normalized and
// clamped. Decorations are collapsed over the removed span and then
// expanded over the inserted one. Every other edit goes through here.
func (e *Editor) ReplaceText(start, end int, text string) {
	e.begin()
	defer e.commit()
	e.replace(start, end, []rune(text))
}

func (e *Editor) replace(start, end int, text []rune) {
	length := e.buffer.Len()
	left := types.ClampOffset(min(start, end), length)
	right := types.ClampOffset(max(start, end), length)
	if left == right && len(text) == 0 {
		return
	}

	removed := e.buffer.Slice(left, right)
	info := e.buffer.Splice(left, right, text)

	if left < right {
		e.decorations.Collapse(left, right, e.buffer.Len())
	}
	if len(text) > 0 {
		e.decorations.Expand(left, len(text), e.cursor)
	}
	e.cursor = types.ClampOffset(e.cursor, e.buffer.Len())

	if e.pending != nil {
		e.pending.Edits = append(e.pending.Edits, history.Edit{Start: left, Removed: removed, Inserted: text})
	}
	logger.DebugTagf("core", "Replace [%d,%d) with %d code points", left, right, len(text))
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: info})
}

// RemoveText removes [start, end) and puts the caret where the span began.
func (e *Editor) RemoveText(start, end int) {
	e.begin()
	defer e.commit()
	e.replace(start, end, nil)
	e.MoveCursor(min(start, end))
}

// Insert types text. With selections, each selection is replaced by text
// and the selections are cleared; otherwise text goes in at the caret.
// The caret ends after the last inserted copy.
func (e *Editor) Insert(text string) {
	if text == "" && !e.HasRanges() {
		return
	}
	e.begin()
	defer e.commit()

	runes := []rune(text)
	if selections := e.selectionHandles(); len(selections) > 0 {
		for _, h := range selections {
			// Earlier replacements may have moved or deleted this one.
			sel, ok := e.decorations.Store().Get(h)
			if !ok {
				continue
			}
			e.replace(sel.Start(), sel.End(), runes)
			e.MoveCursor(sel.Start() + len(runes))
		}
		e.RemoveAllRanges()
		return
	}

	at := e.cursor
	e.replace(at, at, runes)
	e.MoveCursor(at + len(runes))
}

// Backspace removes every selection, or the code point before the caret.
func (e *Editor) Backspace() {
	if e.HasRanges() {
		e.removeSelections()
		return
	}
	if e.cursor > 0 {
		e.RemoveText(e.cursor-1, e.cursor)
	}
}

// Delete removes every selection, or the code point at the caret.
func (e *Editor) Delete() {
	if e.HasRanges() {
		e.removeSelections()
		return
	}
	if e.cursor < e.buffer.Len() {
		e.RemoveText(e.cursor, e.cursor+1)
	}
}

func (e *Editor) removeSelections() {
	e.begin()
	defer e.commit()
	for _, h := range e.selectionHandles() {
		sel, ok := e.decorations.Store().Get(h)
		if !ok {
			continue
		}
		e.RemoveText(sel.Anchor, sel.Focus)
	}
	e.RemoveAllRanges()
}
