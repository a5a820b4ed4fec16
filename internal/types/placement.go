// internal/types/placement.go
package types

// Placement describes where a point (usually the caret) sits relative
// to a decoration.
type Placement int

const (
	PlacementOnLeftBoundary  Placement = iota // point == Start()
	PlacementOnRightBoundary                  // point == End()
	PlacementSurrounds                        // Start() < point < End()
	PlacementRight                            // decoration lies right of the point
	PlacementLeft                             // decoration lies left of the point
)

func (p Placement) String() string {
	switch p {
	case PlacementOnLeftBoundary:
		return "on-left-boundary"
	case PlacementOnRightBoundary:
		return "on-right-boundary"
	case PlacementSurrounds:
		return "surrounds"
	case PlacementRight:
		return "right"
	case PlacementLeft:
		return "left"
	}
	return "unknown"
}

// Locate classifies point against span. A collapsed span sitting on the
// point reports PlacementOnLeftBoundary.
func Locate(point int, span Range) Placement {
	left, right := span.Start(), span.End()
	switch {
	case point == left:
		return PlacementOnLeftBoundary
	case point == right:
		return PlacementOnRightBoundary
	case point > left && point < right:
		return PlacementSurrounds
	case left > point:
		return PlacementRight
	default:
		return PlacementLeft
	}
}
