package decoration

import (
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// Manager recomputes decoration boundaries for edits and remembers where
// the caret recently sat relative to each decoration. That memory decides
// whether a decoration absorbs text typed at its edge ("stickiness").
type Manager struct {
	store   *Store
	history map[Handle]*placementHistory
}

// NewManager creates a manager over store.
func NewManager(store *Store) *Manager {
	return &Manager{
		store:   store,
		history: make(map[Handle]*placementHistory),
	}
}

// Store returns the managed store.
func (m *Manager) Store() *Store {
	return m.store
}

// Remove deletes a decoration together with its placement history.
func (m *Manager) Remove(h Handle) bool {
	delete(m.history, h)
	return m.store.Remove(h)
}

// Replace swaps a decoration for d. The replacement starts with no history.
func (m *Manager) Replace(h Handle, d types.Decoration) (Handle, bool) {
	delete(m.history, h)
	return m.store.Replace(h, d)
}

// Normalize drops collapsed decorations and their histories.
func (m *Manager) Normalize() int {
	dropped := m.store.Normalize()
	for _, h := range dropped {
		delete(m.history, h)
	}
	return len(dropped)
}

// Reset empties the store and forgets all history.
func (m *Manager) Reset() {
	m.store.Clear()
	clear(m.history)
}

// History returns the recorded caret placements for h, oldest first.
func (m *Manager) History(h Handle) []types.Placement {
	hist, ok := m.history[h]
	if !ok {
		return nil
	}
	out := make([]types.Placement, hist.n)
	copy(out, hist.entries())
	return out
}

// Collapse adjusts every decoration for the removal of [start, end), given
// in pre-removal offsets. length is the document length after the edit.
// Decorations entirely inside the removed span are deleted.
func (m *Manager) Collapse(start, end, length int) {
	removed := types.NewRange(start, end).Normalized()
	amount := removed.Start() - removed.End()
	deleted := 0

	for _, h := range m.store.Handles() {
		d, ok := m.store.Get(h)
		if !ok {
			continue
		}

		switch Classify(d.Range, removed) {
		case RelationLeft:
			// Untouched.
		case RelationRight:
			d.Shift(amount)
		case RelationInside:
			m.Remove(h)
			deleted++
			continue
		case RelationSurrounds:
			d.GrowEnd(amount)
		case RelationOverlapsLeft:
			// What survives starts where the removal started.
			d.SetBounds(removed.Start(), removed.Start()+d.End()-removed.End())
		case RelationOverlapsRight:
			d.SetEnd(removed.Start())
		}

		d.Clamp(length)
		m.store.Set(h, d)
	}

	if amount != 0 {
		logger.DebugTagf("decoration", "Collapse [%d,%d): %d decorations, %d deleted", removed.Start(), removed.End(), m.store.Len(), deleted)
	}
}

// Expand adjusts every decoration for amount code points inserted at
// offset at. caret is the caret position at the time of the insertion.
func (m *Manager) Expand(at, amount, caret int) {
	if amount <= 0 {
		return
	}

	for _, h := range m.store.Handles() {
		d, ok := m.store.Get(h)
		if !ok {
			continue
		}
		sticky := m.isSticky(h, d, caret)

		switch types.Locate(at, d.Range) {
		case types.PlacementOnLeftBoundary:
			if sticky {
				d.GrowEnd(amount)
			} else {
				d.Shift(amount)
			}
		case types.PlacementOnRightBoundary:
			if sticky {
				d.GrowEnd(amount)
			}
		case types.PlacementSurrounds:
			// Text typed inside a span belongs to the span.
			d.GrowEnd(amount)
		case types.PlacementRight:
			d.Shift(amount)
		case types.PlacementLeft:
			// Untouched.
		}

		m.store.Set(h, d)
	}

	logger.DebugTagf("decoration", "Expand at %d by %d (caret %d)", at, amount, caret)
}

// IsSticky reports whether the decoration under h would absorb text
// inserted at its edges right now.
func (m *Manager) IsSticky(h Handle, caret int) bool {
	d, ok := m.store.Get(h)
	if !ok {
		return false
	}
	return m.isSticky(h, d, caret)
}

// isSticky: selections never are. Otherwise a decoration is sticky when its
// recent history kept the caret on or inside it (without two consecutive
// rests on its left edge), or when the caret is strictly inside it now.
func (m *Manager) isSticky(h Handle, d types.Decoration, caret int) bool {
	if d.IsSelection() {
		return false
	}
	if m.history[h].sticky() {
		return true
	}
	return d.Contains(caret)
}

// SavePlacementHistory records where caret sits relative to every
// non-selection decoration.
func (m *Manager) SavePlacementHistory(caret int) {
	for _, h := range m.store.Handles() {
		d, ok := m.store.Get(h)
		if !ok || d.IsSelection() {
			continue
		}
		hist, ok := m.history[h]
		if !ok {
			hist = &placementHistory{}
			m.history[h] = hist
		}
		hist.push(types.Locate(caret, d.Range))
	}
}
