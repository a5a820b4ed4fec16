package core

import (
	"slices"

	"github.com/bethropolis/tidemark/internal/types"
)

// Filter selects decorations for segment and run queries. A nil Filter
// selects everything.
type Filter func(types.Decoration) bool

// Run is a maximal stretch of text covered by the same decorations.
type Run struct {
	Start, End  int
	Text        string
	Decorations []types.Decoration
}

// clampSpan normalizes and clamps a query span.
func (e *Editor) clampSpan(start, end int) (int, int) {
	length := e.buffer.Len()
	return types.ClampOffset(min(start, end), length), types.ClampOffset(max(start, end), length)
}

// TextByRange returns the text in [start, end).
func (e *Editor) TextByRange(start, end int) string {
	return string(e.buffer.Slice(start, end))
}

// DecorationsByRange returns copies of the decorations sharing at least one
// code point with [start, end). Decorations that only touch it are excluded.
func (e *Editor) DecorationsByRange(start, end int) []types.Decoration {
	left, right := e.clampSpan(start, end)
	return e.decorations.Store().ByRange(left, right)
}

// SegmentsByRange returns the sorted, distinct offsets at which decoration
// coverage may change inside [start, end): start, end, and every boundary of
// a selected decoration that falls within the span (inclusive).
func (e *Editor) SegmentsByRange(start, end int, filter Filter) []int {
	left, right := e.clampSpan(start, end)
	bounds := []int{left, right}
	for _, d := range e.decorations.Store().All() {
		if filter != nil && !filter(d) {
			continue
		}
		for _, b := range [2]int{d.Start(), d.End()} {
			if b >= left && b <= right {
				bounds = append(bounds, b)
			}
		}
	}
	slices.Sort(bounds)
	return slices.Compact(bounds)
}

// Runs slices [start, end) at its segment boundaries and reports, for each
// non-empty piece, the selected decorations covering all of it.
func (e *Editor) Runs(start, end int, filter Filter) []Run {
	bounds := e.SegmentsByRange(start, end, filter)
	all := e.decorations.Store().All()

	runs := make([]Run, 0, len(bounds))
	for i := 0; i+1 < len(bounds); i++ {
		left, right := bounds[i], bounds[i+1]
		run := Run{Start: left, End: right, Text: e.TextByRange(left, right)}
		for _, d := range all {
			if filter != nil && !filter(d) {
				continue
			}
			if d.Start() <= left && right <= d.End() {
				run.Decorations = append(run.Decorations, d)
			}
		}
		runs = append(runs, run)
	}
	return runs
}
