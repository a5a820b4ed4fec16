package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bethropolis/tidemark/internal/config"
	"github.com/bethropolis/tidemark/internal/highlight"
	"github.com/bethropolis/tidemark/internal/marks"
	"github.com/bethropolis/tidemark/internal/tui"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func writeDoc(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func startApp(t *testing.T, path string) (*App, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	cfg.Editor.HighlightDelayMs = 0

	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := tui.NewWithScreen(s, cfg.Editor.TabWidth)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(40, 10)
	a, err := newApp(cfg, path, ui)
	if err != nil {
		ui.Close()
		t.Fatal(err)
	}
	return a, s
}

func newTestApp(t *testing.T, path string) *App {
	t.Helper()
	a, _ := startApp(t, path)
	t.Cleanup(a.shutdown)
	return a
}

func press(a *App, k tcell.Key, r rune, mod tcell.ModMask) {
	a.handleEvent(tcell.NewEventKey(k, r, mod))
}

func TestEditSaveAndMarks(t *testing.T) {
	path := writeDoc(t, "doc.txt", "hello world")
	a := newTestApp(t, path)

	for i := 0; i < 6; i++ {
		press(a, tcell.KeyRight, 0, tcell.ModNone)
	}
	for i := 0; i < 5; i++ {
		press(a, tcell.KeyRight, 0, tcell.ModShift)
	}
	press(a, tcell.KeyCtrlB, 0, tcell.ModCtrl)
	press(a, tcell.KeyHome, 0, tcell.ModNone)
	press(a, tcell.KeyRune, '>', tcell.ModNone)
	if !a.IsModified() {
		t.Fatal("edit not reported as modified")
	}

	press(a, tcell.KeyCtrlS, 0, tcell.ModCtrl)
	if a.IsModified() {
		t.Error("still modified after save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">hello world" {
		t.Errorf("file = %q", data)
	}

	bold := []types.Decoration{types.NewDecoration("bold", 7, 12)}
	ds, err := marks.Load(path, ">hello world")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bold, ds); diff != "" {
		t.Errorf("sidecar mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(path, []byte("# >hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	reopened := newTestApp(t, path)
	want := []types.Decoration{types.NewDecoration("bold", 9, 14)}
	if diff := cmp.Diff(want, reopened.editor.DecorationsByType("bold")); diff != "" {
		t.Errorf("reopened marks mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	a := newTestApp(t, "")
	press(a, tcell.KeyRune, 'x', tcell.ModNone)
	if err := a.Save(); err == nil {
		t.Error("Save without a path succeeded")
	}
}

func TestReloadCarriesDecorations(t *testing.T) {
	path := writeDoc(t, "doc.txt", "abc def")
	a := newTestApp(t, path)
	a.editor.AddDecoration(types.NewDecoration("italic", 4, 7))
	a.editor.MoveCursor(2)

	if err := os.WriteFile(path, []byte("xx abc def"), 0644); err != nil {
		t.Fatal(err)
	}
	press(a, tcell.KeyCtrlR, 0, tcell.ModCtrl)

	if got := a.editor.Text(); got != "xx abc def" {
		t.Fatalf("Text() = %q", got)
	}
	want := []types.Decoration{types.NewDecoration("italic", 7, 10)}
	if diff := cmp.Diff(want, a.editor.DecorationsByType("italic")); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}
	if a.IsModified() {
		t.Error("modified after reload")
	}
	if got := a.editor.CursorPosition(); got != 2 {
		t.Errorf("caret = %d, want 2", got)
	}
}

func TestHighlightResultsAreReanchored(t *testing.T) {
	path := writeDoc(t, "main.go", "package main\n")
	a := newTestApp(t, path)
	a.editor.ReplaceText(0, 0, "// c\n")

	version := a.scheduled
	a.applyHighlights(highlight.Result{
		Version:     version,
		Text:        "package main\n",
		Decorations: []types.Decoration{types.NewDecoration("syntax.namespace", 8, 12)},
	})
	want := []types.Decoration{types.NewDecoration("syntax.namespace", 13, 17)}
	if diff := cmp.Diff(want, a.editor.DecorationsByType("syntax.namespace")); diff != "" {
		t.Errorf("re-anchored mismatch (-want +got):\n%s", diff)
	}

	a.applyHighlights(highlight.Result{
		Version:     version - 1,
		Text:        a.editor.Text(),
		Decorations: []types.Decoration{types.NewDecoration("syntax.comment", 0, 4)},
	})
	if got := a.editor.DecorationsByType("syntax.comment"); len(got) != 0 {
		t.Errorf("stale pass applied: %v", got)
	}
}

func TestPostRunsOnLoop(t *testing.T) {
	a := newTestApp(t, "")
	ran := false
	if err := a.editorAPI.Post(func() { ran = true }); err != nil {
		t.Fatal(err)
	}
	for !ran {
		a.handleEvent(a.tuiManager.PollEvent())
	}
}

func TestRunUntilQuit(t *testing.T) {
	a, s := startApp(t, writeDoc(t, "notes.txt", "notes"))

	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Ctrl+Q")
	}
	if got := a.editor.Text(); got != "xnotes" {
		t.Errorf("Text() = %q", got)
	}
	if err := a.editorAPI.Post(func() {}); err == nil {
		t.Error("Post succeeded after shutdown")
	}
}

func TestCommandsAreRegistered(t *testing.T) {
	a := newTestApp(t, "")
	for _, name := range []string{"theme", "w", "tag", "wc"} {
		if err := a.modeHandler.RegisterCommand(name, func([]string) error { return nil }); err == nil {
			t.Errorf("command %q was not registered", name)
		}
	}
}
