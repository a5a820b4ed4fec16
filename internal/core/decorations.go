package core

import (
	"strings"

	"github.com/bethropolis/tidemark/internal/core/decoration"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// AddDecoration stores a copy of d with its bounds clamped into the
// document. Caret decorations are ignored.
func (e *Editor) AddDecoration(d types.Decoration) {
	if d.Type == types.TypeCursor {
		return
	}
	e.addDecoration(d)
	e.decorationsChanged(d.Type)
}

func (e *Editor) addDecoration(d types.Decoration) decoration.Handle {
	d.Clamp(e.buffer.Len())
	return e.decorations.Store().Add(d)
}

// RemoveDecoration removes the first stored decoration with d's type and
// raw bounds. Caret decorations are ignored.
func (e *Editor) RemoveDecoration(d types.Decoration) {
	if d.Type == types.TypeCursor {
		return
	}
	h, ok := e.decorations.Store().Find(d)
	if !ok {
		return
	}
	e.decorations.Remove(h)
	e.decorationsChanged(d.Type)
}

// ReplaceDecoration swaps the first stored decoration matching old for a
// clamped copy of replacement. No-op if either is a caret decoration.
func (e *Editor) ReplaceDecoration(old, replacement types.Decoration) {
	if old.Type == types.TypeCursor || replacement.Type == types.TypeCursor {
		return
	}
	h, ok := e.decorations.Store().Find(old)
	if !ok {
		return
	}
	replacement.Clamp(e.buffer.Len())
	e.decorations.Replace(h, replacement)
	e.decorationsChanged(old.Type, replacement.Type)
}

// SetDecorations replaces every decoration, selections included.
func (e *Editor) SetDecorations(ds []types.Decoration) {
	e.decorations.Reset()
	seen := make(map[string]bool)
	var changed []string
	for _, d := range ds {
		if d.Type == types.TypeCursor {
			continue
		}
		e.addDecoration(d)
		if !seen[d.Type] {
			seen[d.Type] = true
			changed = append(changed, d.Type)
		}
	}
	e.decorationsChanged(changed...)
}

// ReplaceDecorationsByPrefix drops every decoration whose type starts with
// prefix and stores ds in their place. Derived decorations (syntax
// highlighting) are refreshed this way without touching anything else.
func (e *Editor) ReplaceDecorationsByPrefix(prefix string, ds []types.Decoration) {
	store := e.decorations.Store()
	for _, h := range store.Handles() {
		if d, ok := store.Get(h); ok && strings.HasPrefix(d.Type, prefix) {
			e.decorations.Remove(h)
		}
	}
	for _, d := range ds {
		if d.Type == types.TypeCursor {
			continue
		}
		e.addDecoration(d)
	}
	e.decorationsChanged(prefix)
}

// ToggleDecoration removes typ from [start, end) when one decoration of
// that type covers the whole span, keeping the parts of it outside the
// span; otherwise it adds a typ decoration over the span. It reports
// whether it added. Empty spans and reserved types are ignored.
func (e *Editor) ToggleDecoration(typ string, start, end int) bool {
	if typ == types.TypeCursor || typ == types.TypeSelection {
		return false
	}
	left, right := e.clampSpan(start, end)
	if left == right {
		return false
	}
	for _, d := range e.DecorationsByType(typ) {
		if d.Start() > left || d.End() < right {
			continue
		}
		h, ok := e.decorations.Store().Find(d)
		if !ok {
			continue
		}
		e.decorations.Remove(h)
		if d.Start() < left {
			e.addDecoration(types.Decoration{Type: typ, ID: d.ID, Range: types.NewRange(d.Start(), left)})
		}
		if right < d.End() {
			e.addDecoration(types.Decoration{Type: typ, ID: d.ID, Range: types.NewRange(right, d.End())})
		}
		e.decorationsChanged(typ)
		return false
	}
	e.addDecoration(types.NewDecoration(typ, left, right))
	e.decorationsChanged(typ)
	return true
}

// Decorations returns copies of all decorations.
func (e *Editor) Decorations() []types.Decoration {
	return e.decorations.Store().All()
}

// DecorationsByType returns copies of the decorations of one type.
func (e *Editor) DecorationsByType(typ string) []types.Decoration {
	return e.decorations.Store().ByType(typ)
}

// NormalizeDecorations drops every decoration that has collapsed to a point.
func (e *Editor) NormalizeDecorations() {
	if n := e.decorations.Normalize(); n > 0 {
		logger.DebugTagf("core", "NormalizeDecorations: dropped %d", n)
		e.decorationsChanged()
	}
}

// IsSticky reports whether the first decoration matching d would absorb
// text typed at its edge right now.
func (e *Editor) IsSticky(d types.Decoration) bool {
	h, ok := e.decorations.Store().Find(d)
	if !ok {
		return false
	}
	return e.decorations.IsSticky(h, e.cursor)
}

func (e *Editor) decorationsChanged(typs ...string) {
	e.dispatch(event.TypeDecorationsChanged, event.DecorationsChangedData{Types: typs})
}

// AddRange adds a selection from anchor start to focus end and moves the
// caret to end.
func (e *Editor) AddRange(start, end int) {
	e.addDecoration(types.NewDecoration(types.TypeSelection, start, end))
	e.MoveCursor(end)
}

// RemoveRange removes the selection with the given raw bounds.
func (e *Editor) RemoveRange(start, end int) {
	e.RemoveDecoration(types.NewDecoration(types.TypeSelection, start, end))
}

// RemoveAllRanges clears the selection set.
func (e *Editor) RemoveAllRanges() {
	handles := e.selectionHandles()
	for _, h := range handles {
		e.decorations.Remove(h)
	}
	if len(handles) > 0 {
		e.decorationsChanged(types.TypeSelection)
	}
}

// Ranges returns copies of the live selections.
func (e *Editor) Ranges() []types.Decoration {
	return e.decorations.Store().ByType(types.TypeSelection)
}

// HasRanges reports whether any selection exists.
func (e *Editor) HasRanges() bool {
	return len(e.selectionHandles()) > 0
}

func (e *Editor) selectionHandles() []decoration.Handle {
	return e.decorations.Store().HandlesByType(types.TypeSelection)
}
