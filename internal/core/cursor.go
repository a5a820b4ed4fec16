package core

import (
	"slices"

	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/rivo/uniseg"
)

// CursorPosition returns the caret offset.
func (e *Editor) CursorPosition() int {
	return e.cursor
}

// Cursor returns the caret as a read-only decoration covering the code
// point it sits on. It is never part of the decoration store.
func (e *Editor) Cursor() types.Decoration {
	return types.NewDecoration(types.TypeCursor, e.cursor, e.cursor+1)
}

// CharacterAtCursor returns the code point under the caret, or "" at the end.
func (e *Editor) CharacterAtCursor() string {
	return string(e.buffer.Slice(e.cursor, e.cursor+1))
}

// MoveCursor places the caret at index, clamped into [0, Length], and
// records where it now sits relative to every non-selection decoration.
func (e *Editor) MoveCursor(index int) {
	e.cursor = types.ClampOffset(index, e.buffer.Len())
	e.decorations.SavePlacementHistory(e.cursor)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: e.cursor})
}

// MoveCursorBy moves the caret by delta code points.
func (e *Editor) MoveCursorBy(delta int) {
	e.MoveCursor(e.cursor + delta)
}

// MoveCursorLeft moves the caret one code point left.
func (e *Editor) MoveCursorLeft() {
	e.MoveCursor(e.cursor - 1)
}

// MoveCursorRight moves the caret one code point right.
func (e *Editor) MoveCursorRight() {
	e.MoveCursor(e.cursor + 1)
}

// MoveCursorByGraphemes moves the caret by n user-perceived characters.
// A caret sitting inside a cluster first snaps to that cluster's edge.
func (e *Editor) MoveCursorByGraphemes(n int) {
	if n == 0 {
		return
	}
	bounds := graphemeBoundaries(e.buffer.String())
	idx, found := slices.BinarySearch(bounds, e.cursor)
	if n > 0 && !found {
		idx--
	}
	target := min(max(idx+n, 0), len(bounds)-1)
	e.MoveCursor(bounds[target])
}

// graphemeBoundaries returns the code point offsets of every cluster
// boundary in text, 0 and the end included.
func graphemeBoundaries(text string) []int {
	bounds := []int{0}
	offset := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		offset += len(g.Runes())
		bounds = append(bounds, offset)
	}
	return bounds
}

// MoveToDecoration places the caret on the left edge of d, if d is stored.
// The caret is placed twice so d's history holds only that placement.
func (e *Editor) MoveToDecoration(d types.Decoration) {
	if d.Type == types.TypeCursor {
		return
	}
	if _, ok := e.decorations.Store().Find(d); !ok {
		return
	}
	e.MoveCursor(d.Start())
	e.MoveCursor(d.Start())
}
