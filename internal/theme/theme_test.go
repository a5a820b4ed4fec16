package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tidemark/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestGetStyleFallsBackByDottedName(t *testing.T) {
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:      tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"syntax":          tcell.StyleDefault.Foreground(tcell.ColorGray),
		"syntax.function": tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}}

	tests := map[string]tcell.Style{
		"syntax.function.call": th.Styles["syntax.function"],
		"syntax.function":      th.Styles["syntax.function"],
		"syntax.keyword":       th.Styles["syntax"],
		"bold":                 th.Styles[StyleDefault],
	}
	for name, want := range tests {
		if got := th.GetStyle(name); got != want {
			t.Errorf("GetStyle(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestComposeLayersDecorations(t *testing.T) {
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"bold":           tcell.StyleDefault.Bold(true),
		"syntax.keyword": tcell.StyleDefault.Foreground(tcell.ColorBlue),
		"highlight":      tcell.StyleDefault.Background(tcell.ColorYellow),
	}}

	got := th.Compose([]types.Decoration{
		types.NewDecoration("syntax.keyword", 0, 3),
		types.NewDecoration("bold", 0, 3),
		types.NewDecoration("unknown", 0, 3),
		types.NewDecoration("highlight", 1, 2),
	})
	fg, bg, attrs := got.Decompose()
	if fg != tcell.ColorBlue {
		t.Errorf("fg = %v, want blue", fg)
	}
	if bg != tcell.ColorYellow {
		t.Errorf("bg = %v, want yellow", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}

	if plain := th.Compose(nil); plain != th.Styles[StyleDefault] {
		t.Errorf("Compose(nil) = %v, want Default", plain)
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sea.toml")
	content := `
is_dark = true

[styles.Default]
fg = "#c0c0c0"
bg = "black"

[styles.StatusBar]
bold = true

[styles.bold]
bold = true

[styles."syntax.keyword"]
fg = "#61afef"

[styles.broken]
fg = "not-a-color"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "sea" || !th.IsDark {
		t.Errorf("got name %q dark %v", th.Name, th.IsDark)
	}

	def := tcell.StyleDefault.Foreground(tcell.NewHexColor(0xc0c0c0)).Background(tcell.ColorBlack)
	want := map[string]tcell.Style{
		StyleDefault:     def,
		StyleStatusBar:   def.Bold(true),
		"bold":           tcell.StyleDefault.Bold(true),
		"syntax.keyword": tcell.StyleDefault.Foreground(tcell.NewHexColor(0x61afef)),
	}
	if diff := cmp.Diff(want, th.Styles, cmp.Comparer(func(a, b tcell.Style) bool { return a == b })); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemeBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[styles\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadThemeFromFile(path); err == nil {
		t.Error("LoadThemeFromFile accepted malformed TOML")
	}
}

func TestManager(t *testing.T) {
	m := NewManager()
	if got := m.Current().Name; got != TidemarkDark.Name {
		t.Fatalf("initial theme = %q", got)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "light.toml"), []byte("name = \"Paper\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}
	n, err := m.LoadThemesFromDir(dir)
	if err != nil || n != 1 {
		t.Fatalf("LoadThemesFromDir() = %d, %v", n, err)
	}
	if diff := cmp.Diff([]string{"Paper", "Tidemark Dark"}, m.ListThemes()); diff != "" {
		t.Errorf("themes mismatch (-want +got):\n%s", diff)
	}

	if err := m.SetTheme("paper"); err != nil {
		t.Fatal(err)
	}
	if got := m.Current().Name; got != "Paper" {
		t.Errorf("Current() = %q after SetTheme", got)
	}
	if err := m.SetTheme("missing"); err == nil {
		t.Error("SetTheme accepted an unknown theme")
	}

	if n, err := m.LoadThemesFromDir(filepath.Join(dir, "nope")); n != 0 || err != nil {
		t.Errorf("missing dir: %d, %v", n, err)
	}
}
