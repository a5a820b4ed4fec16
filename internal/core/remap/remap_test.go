package remap

import (
	"iter"
	"slices"
	"testing"

	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

func TestDiffMatchPatchOps(t *testing.T) {
	got := slices.Collect(DiffMatchPatch{}.Diff([]rune("-o_"), []rune("-n_")))
	want := []Op{
		{Kind: OpRetain, Count: 1},
		{Kind: OpDelete, Count: 1},
		{Kind: OpInsert, Text: "n"},
		{Kind: OpRetain, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffMatchPatchCountsCodePoints(t *testing.T) {
	got := slices.Collect(DiffMatchPatch{}.Diff([]rune("😛😝🤪"), []rune("😛🤪")))
	want := []Op{
		{Kind: OpRetain, Count: 1},
		{Kind: OpDelete, Count: 1},
		{Kind: OpRetain, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestUpgradeReplacedCharacter(t *testing.T) {
	decorations := []types.Decoration{
		types.NewDecoration("span", 0, 3),
		types.NewDecoration("left", 0, 1),
		types.NewDecoration("overlap-left", 0, 2),
		types.NewDecoration("middle", 1, 2),
		types.NewDecoration("overlap-right", 1, 3),
		types.NewDecoration("right", 2, 3),
	}
	got := Upgrade("-o_", "-n_", decorations)

	want := []types.Decoration{
		types.NewDecoration("span", 0, 3),
		types.NewDecoration("left", 0, 1),
		types.NewDecoration("overlap-left", 0, 2),
		types.NewDecoration("overlap-right", 1, 3),
		types.NewDecoration("right", 2, 3),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upgrade mismatch (-want +got):\n%s", diff)
	}
	if len(decorations) != 6 || decorations[3].Type != "middle" {
		t.Error("Upgrade modified its input")
	}
}

// TestUpgradeMatchesLiveEditing drives the same single change through an
// editor by hand and through Upgrade.
func TestUpgradeMatchesLiveEditing(t *testing.T) {
	decorations := []types.Decoration{
		types.NewDecoration("first", 0, 5),
		types.NewDecoration("second", 6, 11),
		types.NewDecoration("whole", 11, 0),
	}

	tests := []struct {
		name     string
		old, new string
		live     func(e *core.Editor)
	}{
		{
			name: "insert",
			old:  "Hello world",
			new:  "Hello brave world",
			live: func(e *core.Editor) {
				e.MoveCursorBy(6)
				e.Insert("brave ")
			},
		},
		{
			name: "remove",
			old:  "Hello world",
			new:  "Hellorld",
			live: func(e *core.Editor) {
				e.MoveCursorBy(5)
				e.AddRange(5, 8)
				e.Backspace()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := core.NewEditor()
			e.SetText(tt.old)
			e.SetDecorations(decorations)
			tt.live(e)
			if e.Text() != tt.new {
				t.Fatalf("live edit produced %q, want %q", e.Text(), tt.new)
			}

			got := Upgrade(tt.old, tt.new, decorations)
			if diff := cmp.Diff(e.Decorations(), got); diff != "" {
				t.Errorf("Upgrade differs from live editing (-live +upgrade):\n%s", diff)
			}
		})
	}
}

// scripted replays a fixed edit script.
type scripted []Op

func (s scripted) Diff(from, to []rune) iter.Seq[Op] {
	return slices.Values(s)
}

func TestUpgradeWithCustomDiffer(t *testing.T) {
	r := New(scripted{
		{Kind: OpRetain, Count: 2},
		{Kind: OpInsert, Text: "XY"},
		{Kind: OpDelete, Count: 1},
		{Kind: OpRetain, Count: 1},
	})
	got := r.Upgrade("abcd", "abXYd", []types.Decoration{
		types.NewDecoration("tail", 3, 4),
		types.NewDecoration("c", 2, 3),
	})
	// c sat under the caret's left edge, so it absorbed the insertion.
	want := []types.Decoration{
		types.NewDecoration("tail", 4, 5),
		types.NewDecoration("c", 2, 4),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUpgradeIdentical(t *testing.T) {
	decorations := []types.Decoration{types.NewDecoration("bold", 2, 4)}
	got := Upgrade("same text", "same text", decorations)
	if diff := cmp.Diff(decorations, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
