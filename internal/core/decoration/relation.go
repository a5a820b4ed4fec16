package decoration

import (
	"fmt"

	"github.com/bethropolis/tidemark/internal/types"
)

// Relation is the geometric relation between a decoration and a span that
// is being removed.
type Relation int

const (
	RelationLeft          Relation = iota // decoration ends at or before the span
	RelationRight                         // decoration starts at or after the span
	RelationInside                        // span covers the whole decoration
	RelationSurrounds                     // decoration covers the whole span
	RelationOverlapsLeft                  // span covers the decoration's left edge only
	RelationOverlapsRight                 // span covers the decoration's right edge only
)

func (r Relation) String() string {
	switch r {
	case RelationLeft:
		return "left"
	case RelationRight:
		return "right"
	case RelationInside:
		return "inside"
	case RelationSurrounds:
		return "surrounds"
	case RelationOverlapsLeft:
		return "overlaps-left"
	case RelationOverlapsRight:
		return "overlaps-right"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Classify relates decoration span d to the removed span. The cases are
// tested in a fixed order so ties (e.g. an empty decoration on the span's
// edge) always resolve the same way. Every pair of intervals lands in one
// of the six cases; falling through means the inputs were corrupt.
func Classify(d, removed types.Range) Relation {
	left, right := d.Start(), d.End()
	start, end := removed.Start(), removed.End()

	switch {
	case right <= start:
		return RelationLeft
	case left >= end:
		return RelationRight
	case start <= left && right <= end:
		return RelationInside
	case left <= start && end <= right:
		return RelationSurrounds
	case start < left && left < end:
		return RelationOverlapsLeft
	case start < right && right < end:
		return RelationOverlapsRight
	}
	panic(fmt.Sprintf("decoration: %+v matches no relation to removed span %+v", d, removed))
}
