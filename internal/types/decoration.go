// internal/types/decoration.go
package types

import "fmt"

// Reserved decoration types.
const (
	// TypeCursor is the caret. It is never stored as a decoration;
	// any attempt to add, remove or replace one is ignored.
	TypeCursor = "cursor"
	// TypeSelection marks a live selection range.
	TypeSelection = "selection"
)

// Decoration is a typed span over the document's code points.
// Any Type other than the reserved ones is opaque to the editor.
type Decoration struct {
	Type string
	ID   string
	Range
}

// NewDecoration creates a decoration of the given type anchored at start
// and extended to end.
func NewDecoration(typ string, start, end int) Decoration {
	return Decoration{Type: typ, Range: NewRange(start, end)}
}

// Matches reports whether d and o have the same type and raw bounds.
// This is the lookup identity used by remove and replace; IDs are ignored.
func (d Decoration) Matches(o Decoration) bool {
	return d.Type == o.Type && d.Anchor == o.Anchor && d.Focus == o.Focus
}

// IsSelection reports whether d is a selection range.
func (d Decoration) IsSelection() bool {
	return d.Type == TypeSelection
}

func (d Decoration) String() string {
	if d.ID != "" {
		return fmt.Sprintf("%s#%s{%d,%d}", d.Type, d.ID, d.Anchor, d.Focus)
	}
	return fmt.Sprintf("%s{%d,%d}", d.Type, d.Anchor, d.Focus)
}
