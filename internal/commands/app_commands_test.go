package commands

import (
	"fmt"
	"testing"

	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

// fakeAPI backs the document calls with a real editor. Calls it does not
// override panic through the nil embedded interface.
type fakeAPI struct {
	plugin.EditorAPI
	editor   *core.Editor
	themes   *theme.Manager
	commands map[string]plugin.CommandFunc
	status   string
	modified bool
	saves    int
	quit     string
}

func newFakeAPI(text string) *fakeAPI {
	ed := core.NewEditor()
	ed.SetText(text)
	api := &fakeAPI{editor: ed, themes: theme.NewManager(), commands: map[string]plugin.CommandFunc{}}
	RegisterAppCommands(api)
	return api
}

func (f *fakeAPI) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	fn, ok := f.commands[name]
	if !ok {
		t.Fatalf("command %q not registered", name)
	}
	return fn(args)
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	f.commands[name] = fn
	return nil
}
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.status = fmt.Sprintf(format, args...)
}
func (f *fakeAPI) Ranges() []types.Decoration          { return f.editor.Ranges() }
func (f *fakeAPI) Decorations() []types.Decoration     { return f.editor.Decorations() }
func (f *fakeAPI) AddDecoration(d types.Decoration)    { f.editor.AddDecoration(d) }
func (f *fakeAPI) RemoveDecoration(d types.Decoration) { f.editor.RemoveDecoration(d) }
func (f *fakeAPI) NormalizeDecorations()               { f.editor.NormalizeDecorations() }
func (f *fakeAPI) MoveCursor(offset int)               { f.editor.MoveCursor(offset) }
func (f *fakeAPI) IsBufferModified() bool              { return f.modified }
func (f *fakeAPI) SaveBuffer() error                   { f.saves++; return nil }
func (f *fakeAPI) SetTheme(name string) error          { return f.themes.SetTheme(name) }
func (f *fakeAPI) GetTheme() *theme.Theme              { return f.themes.Current() }
func (f *fakeAPI) ListThemes() []string                { return f.themes.ListThemes() }
func (f *fakeAPI) RequestQuit(force bool) {
	f.quit = fmt.Sprintf("force=%v", force)
}

func TestTagAndUntag(t *testing.T) {
	api := newFakeAPI("one two three")
	if err := api.run(t, "tag", "link"); err == nil {
		t.Error("tag without selection succeeded")
	}

	api.editor.AddRange(0, 3)
	api.editor.AddRange(8, 4)
	if err := api.run(t, "tag", "link"); err != nil {
		t.Fatal(err)
	}
	want := []types.Decoration{
		types.NewDecoration("link", 0, 3),
		types.NewDecoration("link", 4, 8),
	}
	if diff := cmp.Diff(want, api.editor.DecorationsByType("link")); diff != "" {
		t.Errorf("tagged mismatch (-want +got):\n%s", diff)
	}

	api.editor.RemoveAllRanges()
	api.editor.AddRange(5, 6)
	if err := api.run(t, "untag", "link"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[:1], api.editor.DecorationsByType("link")); diff != "" {
		t.Errorf("after untag (-want +got):\n%s", diff)
	}

	if err := api.run(t, "tag", types.TypeSelection); err == nil {
		t.Error("tagging a reserved type succeeded")
	}
}

func TestNormalizeAndList(t *testing.T) {
	api := newFakeAPI("abc")
	api.editor.AddDecoration(types.NewDecoration("bold", 1, 1))
	api.editor.AddDecoration(types.NewDecoration("bold", 0, 2))
	api.editor.AddDecoration(types.NewDecoration("comment", 0, 3))

	if err := api.run(t, "decorations"); err != nil {
		t.Fatal(err)
	}
	if api.status != "bold=2 comment=1" {
		t.Errorf("status = %q", api.status)
	}
	if err := api.run(t, "normalize"); err != nil {
		t.Fatal(err)
	}
	if api.status != "Dropped 1 empty decoration(s)" {
		t.Errorf("status = %q", api.status)
	}
}

func TestFileCommands(t *testing.T) {
	api := newFakeAPI("abc")
	api.modified = true
	if err := api.run(t, "q"); err == nil || api.quit != "" {
		t.Errorf(":q with changes: err=%v quit=%q", err, api.quit)
	}
	if err := api.run(t, "wq"); err != nil || api.saves != 1 || api.quit != "force=true" {
		t.Errorf(":wq: err=%v saves=%d quit=%q", err, api.saves, api.quit)
	}
	if err := api.run(t, "goto", "2"); err != nil || api.editor.CursorPosition() != 2 {
		t.Errorf(":goto: err=%v caret=%d", err, api.editor.CursorPosition())
	}
	if err := api.run(t, "goto", "x"); err == nil {
		t.Error(":goto x succeeded")
	}
}

func TestThemeCommands(t *testing.T) {
	api := newFakeAPI("")
	if err := api.run(t, "theme"); err != nil {
		t.Fatal(err)
	}
	if api.status != "Current theme: "+theme.TidemarkDark.Name {
		t.Errorf("status = %q", api.status)
	}
	if err := api.run(t, "theme", "No", "Such"); err == nil {
		t.Error("unknown theme accepted")
	}
}
