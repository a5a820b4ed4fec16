package highlight

import (
	"context"
	"testing"
	"time"

	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

func find(ds []types.Decoration, typ string, start, end int) bool {
	for _, d := range ds {
		if d.Type == typ && d.Start() == start && d.End() == end {
			return true
		}
	}
	return false
}

func TestForFile(t *testing.T) {
	tests := map[string]string{
		"main.go":      "Go",
		"tool.PY":      "Python",
		"app.mjs":      "JavaScript",
		"lib.rs":       "Rust",
		"notes.txt":    "",
		"no-extension": "",
	}
	for path, want := range tests {
		got := ""
		if l := ForFile(path); l != nil {
			got = l.Name
		}
		if got != want {
			t.Errorf("ForFile(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestQueriesCompile(t *testing.T) {
	h := NewHighlighter()
	defer h.Close()
	for _, l := range Languages() {
		if _, err := h.Highlight(context.Background(), "", l); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
	}
}

func TestHighlightGo(t *testing.T) {
	h := NewHighlighter()
	defer h.Close()

	src := "package main\n\n// é\nfunc main() { x := \"ö\"; _ = x }\n"
	ds, err := h.Highlight(context.Background(), src, ForFile("x.go"))
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		typ        string
		start, end int
	}{
		{"syntax.keyword", 0, 7},
		{"syntax.namespace", 8, 12},
		{"syntax.comment", 14, 18},
		{"syntax.keyword", 19, 23},
		{"syntax.function", 24, 28},
		// code point offsets, not bytes, after the "é" above
		{"syntax.string", 38, 41},
	}
	for _, w := range want {
		if !find(ds, w.typ, w.start, w.end) {
			t.Errorf("missing %s{%d,%d} in %v", w.typ, w.start, w.end, ds)
		}
	}
	for i := 1; i < len(ds); i++ {
		if ds[i].Start() < ds[i-1].Start() {
			t.Fatalf("result not sorted at %d: %v", i, ds)
		}
	}
}

func TestHighlightNoLanguage(t *testing.T) {
	h := NewHighlighter()
	defer h.Close()
	if _, err := h.Highlight(context.Background(), "x", nil); err == nil {
		t.Error("Highlight(nil language) returned no error")
	}
}

func TestManagerDebouncesAndDelivers(t *testing.T) {
	results := make(chan Result, 4)
	m := NewManager(NewHighlighter(), 20*time.Millisecond, func(r Result) { results <- r })
	defer m.Shutdown()
	m.SetLanguage(ForFile("a.go"))

	m.Schedule("package a\n")
	last := m.Schedule("package main\n")

	select {
	case r := <-results:
		if r.Version != last {
			t.Errorf("delivered version %d, want %d", r.Version, last)
		}
		if diff := cmp.Diff("package main\n", r.Text); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
		if !find(r.Decorations, "syntax.keyword", 0, 7) {
			t.Errorf("missing package keyword in %v", r.Decorations)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	select {
	case r := <-results:
		t.Errorf("superseded pass delivered: %+v", r)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestManagerWithoutLanguageClears(t *testing.T) {
	results := make(chan Result, 1)
	m := NewManager(NewHighlighter(), 0, func(r Result) { results <- r })
	defer m.Shutdown()

	m.Schedule("plain text")
	select {
	case r := <-results:
		if r.Err != nil || len(r.Decorations) != 0 {
			t.Errorf("got %+v, want an empty result", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestManagerShutdownDropsPending(t *testing.T) {
	results := make(chan Result, 1)
	m := NewManager(NewHighlighter(), 30*time.Millisecond, func(r Result) { results <- r })
	m.SetLanguage(ForFile("a.go"))
	m.Schedule("package a\n")
	m.Shutdown()

	select {
	case r := <-results:
		t.Errorf("pass ran after Shutdown: %+v", r)
	case <-time.After(80 * time.Millisecond):
	}
}
