// Package render lays text out into visual lines of terminal cells.
package render

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Glyph is one grapheme cluster placed on a visual line. Tabs and line
// breaks have no Runes; a tab is drawn as Width blanks.
type Glyph struct {
	Start, End int // code point offsets
	X, Width   int
	Runes      []rune
}

// Line is one visual line. End is the offset just past its last glyph,
// excluding a terminating line break.
type Line struct {
	Start, End int
	Glyphs     []Glyph
	// Wrapped is set when the line was broken to fit the width rather
	// than by a line break.
	Wrapped bool
}

// Layout is text broken into visual lines at a given width.
type Layout struct {
	Lines []Line
}

// NewLayout breaks text into lines of at most width cells (width <= 0
// disables wrapping), expanding tabs to the next multiple of tabWidth.
func NewLayout(text string, width, tabWidth int) *Layout {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	l := &Layout{}
	line := Line{}
	x, offset := 0, 0

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		g := Glyph{Start: offset, End: offset + len(runes)}
		offset = g.End

		switch {
		case runes[0] == '\n' || runes[0] == '\r':
			line.End = g.Start
			l.Lines = append(l.Lines, line)
			line = Line{Start: g.End, End: g.End}
			x = 0
			continue
		case runes[0] == '\t':
			g.Width = tabWidth - x%tabWidth
		default:
			g.Width = gr.Width()
			g.Runes = runes
		}

		if width > 0 && x > 0 && x+g.Width > width {
			line.Wrapped = true
			l.Lines = append(l.Lines, line)
			line = Line{Start: g.Start}
			x = 0
			if runes[0] == '\t' {
				g.Width = tabWidth
			}
		}
		g.X = x
		x += g.Width
		line.Glyphs = append(line.Glyphs, g)
		line.End = g.End
	}
	l.Lines = append(l.Lines, line)
	return l
}

// lineFor returns the index of the last line starting at or before offset.
func (l *Layout) lineFor(offset int) int {
	i := sort.Search(len(l.Lines), func(i int) bool { return l.Lines[i].Start > offset })
	return max(i-1, 0)
}

// Position returns the cell of offset: its column and visual line.
// An offset past a line's last glyph sits just after it.
func (l *Layout) Position(offset int) (x, y int) {
	y = l.lineFor(offset)
	line := l.Lines[y]
	for _, g := range line.Glyphs {
		if g.End > offset {
			return g.X, y
		}
	}
	if n := len(line.Glyphs); n > 0 {
		last := line.Glyphs[n-1]
		return last.X + last.Width, y
	}
	return 0, y
}

// Offset returns the offset of the glyph covering column x on line y,
// clamping y into the layout. Past the end of a line it returns the
// line's end, or the start of its last glyph when the line wraps.
func (l *Layout) Offset(x, y int) int {
	y = min(max(y, 0), len(l.Lines)-1)
	line := l.Lines[y]
	for _, g := range line.Glyphs {
		if x < g.X+g.Width {
			return g.Start
		}
	}
	if line.Wrapped && len(line.Glyphs) > 0 {
		return line.Glyphs[len(line.Glyphs)-1].Start
	}
	return line.End
}
