// Package history provides undo/redo functionality via a change history stack.
package history

import "github.com/bethropolis/tidemark/internal/types"

// Edit is one committed replacement: Removed was taken out at Start and
// Inserted put in its place.
type Edit struct {
	Start    int
	Removed  []rune
	Inserted []rune
}

// Inverse returns the edit that undoes e.
func (e Edit) Inverse() Edit {
	return Edit{Start: e.Start, Removed: e.Inserted, Inserted: e.Removed}
}

// Change is one user-level operation. An insert over several selections
// produces several edits but a single change.
type Change struct {
	Edits        []Edit
	CursorBefore int
	CursorAfter  int
	// Decorations before and after the change, selections included.
	Before []types.Decoration
	After  []types.Decoration
}
