package decoration

import (
	"testing"

	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

func TestPlacementHistoryRing(t *testing.T) {
	var h placementHistory
	h.push(types.PlacementLeft)
	h.push(types.PlacementSurrounds)
	h.push(types.PlacementOnRightBoundary)

	want := []types.Placement{types.PlacementSurrounds, types.PlacementOnRightBoundary}
	if diff := cmp.Diff(want, h.entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacementHistorySticky(t *testing.T) {
	tests := []struct {
		name string
		in   []types.Placement
		want bool
	}{
		{"empty", nil, false},
		{"right edge", []types.Placement{types.PlacementOnRightBoundary}, true},
		{"inside then edge", []types.Placement{types.PlacementSurrounds, types.PlacementOnRightBoundary}, true},
		{"one left edge", []types.Placement{types.PlacementOnLeftBoundary}, true},
		{"two left edges", []types.Placement{types.PlacementOnLeftBoundary, types.PlacementOnLeftBoundary}, false},
		{"moved away right", []types.Placement{types.PlacementOnRightBoundary, types.PlacementLeft}, false},
		{"came from outside", []types.Placement{types.PlacementRight, types.PlacementOnLeftBoundary}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h placementHistory
			for _, p := range tt.in {
				h.push(p)
			}
			if got := h.sticky(); got != tt.want {
				t.Errorf("sticky(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	var missing *placementHistory
	if missing.sticky() {
		t.Error("nil history is sticky")
	}
}
