package marks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

func TestPath(t *testing.T) {
	if got, want := Path(filepath.Join("a", "b.txt")), filepath.Join("a", ".b.txt"+Suffix); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.txt")
	ds := []types.Decoration{
		types.NewDecoration("bold", 0, 5),
		{Type: "link", ID: "l1", Range: types.NewRange(9, 6)},
		types.NewDecoration(types.TypeSelection, 0, 2),
		types.NewDecoration("syntax.keyword", 0, 5),
		types.NewDecoration("search.match", 6, 11),
	}
	if err := Save(doc, "hello world", ds); err != nil {
		t.Fatal(err)
	}

	got, err := Load(doc, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ds[:2], got); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReanchorsChangedText(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.txt")
	if err := Save(doc, "hello world", []types.Decoration{types.NewDecoration("bold", 6, 11)}); err != nil {
		t.Fatal(err)
	}

	got, err := Load(doc, ">> hello world")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Decoration{types.NewDecoration("bold", 9, 14)}, got); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingAndBroken(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.txt")
	if got, err := Load(doc, ""); err != nil || got != nil {
		t.Errorf("missing sidecar: %v, %v", got, err)
	}

	if err := os.WriteFile(Path(doc), []byte("[[decoration\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(doc, ""); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestSaveWithoutMarksRemovesSidecar(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.txt")
	if err := Save(doc, "x", []types.Decoration{types.NewDecoration("bold", 0, 1)}); err != nil {
		t.Fatal(err)
	}
	if err := Save(doc, "x", []types.Decoration{types.NewDecoration("syntax.string", 0, 1)}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(Path(doc)); !os.IsNotExist(err) {
		t.Errorf("sidecar still present: %v", err)
	}
}
