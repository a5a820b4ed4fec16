package decoration

import "github.com/bethropolis/tidemark/internal/types"

// historySize is how many caret placements are remembered per decoration.
const historySize = 2

// placementHistory is a fixed ring of the most recent caret placements
// relative to one decoration, oldest first.
type placementHistory struct {
	items [historySize]types.Placement
	n     int
}

func (h *placementHistory) push(p types.Placement) {
	if h.n < historySize {
		h.items[h.n] = p
		h.n++
		return
	}
	copy(h.items[:], h.items[1:])
	h.items[historySize-1] = p
}

func (h *placementHistory) entries() []types.Placement {
	return h.items[:h.n]
}

func (h *placementHistory) count(p types.Placement) int {
	c := 0
	for _, item := range h.entries() {
		if item == p {
			c++
		}
	}
	return c
}

// sticky reports whether the recorded placements all kept the caret on or
// inside the decoration, without resting on its left edge twice in a row.
func (h *placementHistory) sticky() bool {
	if h == nil || h.n == 0 {
		return false
	}
	if h.count(types.PlacementLeft) > 0 || h.count(types.PlacementRight) > 0 {
		return false
	}
	return h.count(types.PlacementOnLeftBoundary) < 2
}
