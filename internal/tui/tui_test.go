package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newTestTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s, 4)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(width, height)
	t.Cleanup(ui.Close)
	return ui, s
}

func testTheme() *theme.Theme {
	return &theme.Theme{Name: "test", Styles: map[string]tcell.Style{
		theme.StyleDefault:   tcell.StyleDefault,
		theme.StyleStatusBar: tcell.StyleDefault.Reverse(true),
		"bold":               tcell.StyleDefault.Bold(true),
	}}
}

func row(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
		for _, r := range combc {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawTextAndDecorations(t *testing.T) {
	ui, s := newTestTUI(t, 10, 4)
	ed := core.NewEditor()
	ed.SetText("Hello\nworld")
	ed.AddDecoration(types.NewDecoration("bold", 1, 3))
	ed.MoveCursor(8)

	sb := NewStatusBar(time.Second)
	sb.SetFileInfo("a.txt", false)
	sb.SetCursorInfo(ed.CursorPosition(), ed.Length(), 0)
	ui.Draw(ed, testTheme(), sb)

	if got := row(s, 0, 10); got != "Hello" {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(s, 1, 10); got != "world" {
		t.Errorf("row 1 = %q", got)
	}
	if got := row(s, 3, 10); got != "a.txt -- 8" {
		t.Errorf("status row = %q", got)
	}

	for x, bold := range []bool{false, true, true, false} {
		_, _, style, _ := s.GetContent(x, 0)
		_, _, attrs := style.Decompose()
		if (attrs&tcell.AttrBold != 0) != bold {
			t.Errorf("cell %d bold = %v, want %v", x, !bold, bold)
		}
	}

	x, y, visible := s.GetCursor()
	if !visible || x != 2 || y != 1 {
		t.Errorf("cursor = (%d,%d,%v), want (2,1,true)", x, y, visible)
	}
}

func TestDrawScrollsToCaret(t *testing.T) {
	ui, s := newTestTUI(t, 10, 3)
	ed := core.NewEditor()
	ed.SetText("a\nb\nc\nd")
	ed.MoveCursor(ed.Length())
	ui.Draw(ed, testTheme(), nil)

	if got := row(s, 0, 10); got != "c" {
		t.Errorf("row 0 = %q, want the scrolled view", got)
	}
	if _, y, _ := s.GetCursor(); y != 1 {
		t.Errorf("cursor row = %d, want 1", y)
	}

	ed.MoveCursor(0)
	ui.Draw(ed, testTheme(), nil)
	if got := row(s, 0, 10); got != "a" {
		t.Errorf("row 0 = %q after scrolling back", got)
	}
}

func TestDrawWideAndCombining(t *testing.T) {
	ui, s := newTestTUI(t, 10, 2)
	ed := core.NewEditor()
	ed.SetText("日e\u0301x")
	ed.MoveCursor(ed.Length())
	ui.Draw(ed, testTheme(), nil)

	if mainc, _, _, _ := s.GetContent(0, 0); mainc != '日' {
		t.Errorf("cell 0 = %q", mainc)
	}
	mainc, combc, _, _ := s.GetContent(2, 0)
	if mainc != 'e' || len(combc) != 1 || combc[0] != '\u0301' {
		t.Errorf("cell 2 = %q %q", mainc, combc)
	}
	if x, _, _ := s.GetCursor(); x != 4 {
		t.Errorf("cursor column = %d, want 4", x)
	}
}

func TestStatusBarMessages(t *testing.T) {
	_, s := newTestTUI(t, 30, 2)
	sb := NewStatusBar(time.Hour)
	sb.SetFileInfo("", true)
	sb.SetCursorInfo(1, 5, 2)
	sb.SetLanguage("Go")

	sb.Draw(s, 30, 2, testTheme())
	if got := row(s, 1, 30); got != "[No Name] [Modified] -- 1/5 (2" {
		t.Errorf("status = %q", got)
	}

	sb.SetTemporaryMessage("saved %d bytes", 12)
	sb.Draw(s, 30, 2, testTheme())
	if got := row(s, 1, 30); got != "saved 12 bytes" {
		t.Errorf("status = %q", got)
	}

	sb.ResetTemporaryMessage()
	sb.SetFileInfo("f.go", false)
	sb.Draw(s, 30, 2, testTheme())
	if got := row(s, 1, 30); got != "f.go -- 1/5 (2 sel) -- Go" {
		t.Errorf("status = %q", got)
	}
}
