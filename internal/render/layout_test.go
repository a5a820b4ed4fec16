package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type span struct {
	Start, End int
	Wrapped    bool
}

func spans(l *Layout) []span {
	var out []span
	for _, line := range l.Lines {
		out = append(out, span{line.Start, line.End, line.Wrapped})
	}
	return out
}

func TestLayoutLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []span
	}{
		{"empty", "", 10, []span{{0, 0, false}}},
		{"hard breaks", "ab\ncd\n", 10, []span{{0, 2, false}, {3, 5, false}, {6, 6, false}}},
		{"crlf is one break", "ab\r\ncd", 10, []span{{0, 2, false}, {4, 6, false}}},
		{"soft wrap", "abcdef", 4, []span{{0, 4, true}, {4, 6, false}}},
		{"no wrap", "abcdef", 0, []span{{0, 6, false}}},
		// each ideograph is two cells wide
		{"wide", "日本語", 5, []span{{0, 2, true}, {2, 3, false}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, spans(NewLayout(tt.text, tt.width, 4))); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutGlyphs(t *testing.T) {
	// "e" + combining acute is one cluster of two code points
	l := NewLayout("e\u0301\tx", 0, 4)
	got := l.Lines[0].Glyphs
	want := []Glyph{
		{Start: 0, End: 2, X: 0, Width: 1, Runes: []rune("e\u0301")},
		{Start: 2, End: 3, X: 1, Width: 3},
		{Start: 3, End: 4, X: 4, Width: 1, Runes: []rune("x")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutPositionAndOffset(t *testing.T) {
	l := NewLayout("abcdef\ngh", 4, 4)
	// lines: [0,4) wrapped, [4,6), [7,9)

	positions := map[int][2]int{
		0: {0, 0},
		3: {3, 0},
		4: {0, 1},
		6: {2, 1},
		7: {0, 2},
		9: {2, 2},
	}
	for offset, want := range positions {
		x, y := l.Position(offset)
		if [2]int{x, y} != want {
			t.Errorf("Position(%d) = (%d,%d), want %v", offset, x, y, want)
		}
	}

	offsets := []struct{ x, y, want int }{
		{2, 0, 2},
		{9, 0, 3}, // past a wrapped line: its last glyph
		{9, 1, 6}, // past a hard line: its end
		{1, 2, 8},
		{0, -3, 0},
		{5, 42, 9},
	}
	for _, tt := range offsets {
		if got := l.Offset(tt.x, tt.y); got != tt.want {
			t.Errorf("Offset(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
