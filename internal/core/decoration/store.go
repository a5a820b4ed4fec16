// Package decoration keeps the decorations attached to a document and
// recomputes their boundaries when the text underneath them changes.
package decoration

import "github.com/bethropolis/tidemark/internal/types"

// Handle is the stable identity of a stored decoration. Two decorations
// with equal fields still have different handles.
type Handle uint64

type entry struct {
	handle     Handle
	decoration types.Decoration
}

// Store is an ordered arena of decorations addressed by handle.
// Order is insertion order and only matters for stable iteration.
type Store struct {
	entries []entry
	next    Handle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make([]entry, 0)}
}

// Len returns the number of stored decorations.
func (s *Store) Len() int {
	return len(s.entries)
}

// Add appends d and returns its new handle.
func (s *Store) Add(d types.Decoration) Handle {
	s.next++
	s.entries = append(s.entries, entry{handle: s.next, decoration: d})
	return s.next
}

// Get returns the decoration stored under h.
func (s *Store) Get(h Handle) (types.Decoration, bool) {
	if i := s.index(h); i >= 0 {
		return s.entries[i].decoration, true
	}
	return types.Decoration{}, false
}

// Set overwrites the decoration stored under h, keeping its identity.
func (s *Store) Set(h Handle, d types.Decoration) bool {
	i := s.index(h)
	if i < 0 {
		return false
	}
	s.entries[i].decoration = d
	return true
}

// Replace swaps the decoration under h for d in the same position.
// The replacement gets a fresh handle; h becomes invalid.
func (s *Store) Replace(h Handle, d types.Decoration) (Handle, bool) {
	i := s.index(h)
	if i < 0 {
		return 0, false
	}
	s.next++
	s.entries[i] = entry{handle: s.next, decoration: d}
	return s.next, true
}

// Remove deletes the decoration stored under h.
func (s *Store) Remove(h Handle) bool {
	i := s.index(h)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// Find returns the handle of the first decoration matching d by
// type and raw bounds.
func (s *Store) Find(d types.Decoration) (Handle, bool) {
	for _, e := range s.entries {
		if e.decoration.Matches(d) {
			return e.handle, true
		}
	}
	return 0, false
}

// Handles returns a snapshot of all handles in store order.
func (s *Store) Handles() []Handle {
	out := make([]Handle, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.handle
	}
	return out
}

// All returns copies of all decorations in store order.
func (s *Store) All() []types.Decoration {
	return s.collect(func(types.Decoration) bool { return true })
}

// ByType returns copies of the decorations of the given type.
func (s *Store) ByType(typ string) []types.Decoration {
	return s.collect(func(d types.Decoration) bool { return d.Type == typ })
}

// HandlesByType returns the handles of the decorations of the given type.
func (s *Store) HandlesByType(typ string) []Handle {
	var out []Handle
	for _, e := range s.entries {
		if e.decoration.Type == typ {
			out = append(out, e.handle)
		}
	}
	return out
}

// ByRange returns copies of the decorations sharing at least one code point
// with [start, end). Decorations that only touch the query are excluded.
func (s *Store) ByRange(start, end int) []types.Decoration {
	query := types.NewRange(start, end)
	return s.collect(func(d types.Decoration) bool { return d.Intersects(query) })
}

// Normalize drops every decoration that has collapsed to a single point
// and returns their handles.
func (s *Store) Normalize() []Handle {
	var dropped []Handle
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.decoration.IsEmpty() {
			dropped = append(dropped, e.handle)
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return dropped
}

// Clear removes everything. Handles are never reused.
func (s *Store) Clear() {
	s.entries = s.entries[:0]
}

func (s *Store) index(h Handle) int {
	for i, e := range s.entries {
		if e.handle == h {
			return i
		}
	}
	return -1
}

func (s *Store) collect(keep func(types.Decoration) bool) []types.Decoration {
	out := make([]types.Decoration, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(e.decoration) {
			out = append(out, e.decoration)
		}
	}
	return out
}
