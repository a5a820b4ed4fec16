package decoration

import (
	"testing"

	"github.com/bethropolis/tidemark/internal/types"
)

func TestClassify(t *testing.T) {
	removed := types.NewRange(3, 6)
	tests := []struct {
		name string
		d    types.Range
		want Relation
	}{
		{"left", types.NewRange(0, 2), RelationLeft},
		{"left touching", types.NewRange(1, 3), RelationLeft},
		{"right", types.NewRange(7, 9), RelationRight},
		{"right touching", types.NewRange(6, 8), RelationRight},
		{"inside", types.NewRange(4, 5), RelationInside},
		{"inside exact", types.NewRange(3, 6), RelationInside},
		{"inside backward", types.NewRange(5, 3), RelationInside},
		{"surrounds", types.NewRange(2, 8), RelationSurrounds},
		{"surrounds sharing left", types.NewRange(3, 8), RelationSurrounds},
		{"surrounds sharing right", types.NewRange(1, 6), RelationSurrounds},
		{"overlaps left", types.NewRange(4, 9), RelationOverlapsLeft},
		{"overlaps right", types.NewRange(1, 4), RelationOverlapsRight},
		{"overlaps right backward", types.NewRange(4, 1), RelationOverlapsRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.d, removed); got != tt.want {
				t.Errorf("Classify(%+v, %+v) = %v, want %v", tt.d, removed, got, tt.want)
			}
		})
	}
}

func TestClassifyEmptyRemoval(t *testing.T) {
	point := types.NewRange(2, 2)
	if got := Classify(types.NewRange(0, 2), point); got != RelationLeft {
		t.Errorf("ending at point: %v", got)
	}
	if got := Classify(types.NewRange(2, 4), point); got != RelationRight {
		t.Errorf("starting at point: %v", got)
	}
	if got := Classify(types.NewRange(1, 4), point); got != RelationSurrounds {
		t.Errorf("around point: %v", got)
	}
}
