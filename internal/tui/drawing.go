// internal/tui/drawing.go
package tui

import (
	"sort"

	"github.com/bethropolis/tidemark/internal/config"
	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/render"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Draw renders the editor text, its decorations and the status bar, then
// shows the screen.
func (t *TUI) Draw(editor *core.Editor, activeTheme *theme.Theme, sb *StatusBar) {
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	t.screen.SetStyle(defaultStyle)
	t.screen.Clear()

	if viewHeight > 0 && width > 0 {
		layout := t.Layout(editor.Text())
		cursorX, cursorY := layout.Position(editor.CursorPosition())
		t.scrollTo(cursorY, viewHeight)

		t.drawText(layout, editor.Runs(0, editor.Length(), nil), activeTheme, viewHeight)

		if cursorX < width {
			t.screen.ShowCursor(cursorX, cursorY-t.top)
		} else {
			t.screen.HideCursor()
		}
	} else {
		t.screen.HideCursor()
	}

	if sb != nil {
		sb.Draw(t.screen, width, height, activeTheme)
	}
	t.screen.Show()
}

// scrollTo moves the viewport the least needed to show line y.
func (t *TUI) scrollTo(y, viewHeight int) {
	if y < t.top {
		t.top = y
	} else if y >= t.top+viewHeight {
		t.top = y - viewHeight + 1
	}
}

func (t *TUI) drawText(layout *render.Layout, runs []core.Run, activeTheme *theme.Theme, viewHeight int) {
	width, _ := t.Size()
	styles := make(map[int]tcell.Style, len(runs))

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := t.top + screenY
		if lineIdx >= len(layout.Lines) {
			break
		}
		for _, g := range layout.Lines[lineIdx].Glyphs {
			if g.X >= width {
				break
			}
			i := runAt(runs, g.Start)
			style, ok := styles[i]
			if !ok {
				if i < len(runs) {
					style = activeTheme.Compose(runs[i].Decorations)
				} else {
					style = activeTheme.GetStyle(theme.StyleDefault)
				}
				styles[i] = style
			}

			if g.Runes == nil {
				for cw := 0; cw < g.Width && g.X+cw < width; cw++ {
					t.screen.SetContent(g.X+cw, screenY, ' ', nil, style)
				}
				continue
			}
			t.screen.SetContent(g.X, screenY, g.Runes[0], g.Runes[1:], style)
			for cw := 1; cw < g.Width && g.X+cw < width; cw++ {
				t.screen.SetContent(g.X+cw, screenY, ' ', nil, style)
			}
		}
	}
}

// runAt returns the index of the run covering offset.
func runAt(runs []core.Run, offset int) int {
	return sort.Search(len(runs), func(i int) bool { return runs[i].End > offset })
}
