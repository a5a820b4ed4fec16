// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/tidemark/internal/types"

// Buffer defines the interface for a flat sequence of Unicode code points.
// Offsets count code points, not bytes or UTF-16 units. Every method clamps
// its offsets into [0, Len()].
type Buffer interface {
	Set(text string)
	String() string
	Runes() []rune
	Len() int
	Slice(start, end int) []rune
	// Splice replaces [start, end) with text and reports the committed edit.
	Splice(start, end int, text []rune) types.EditInfo
	IsModified() bool
	ClearModified()
}
