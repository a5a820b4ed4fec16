package wordcount

import (
	"fmt"
	"testing"

	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want Stats
	}{
		{"", Stats{}},
		{"hello, world!\n", Stats{Lines: 2, Words: 2, Characters: 14, CodePoints: 14}},
		{"can't stop", Stats{Lines: 1, Words: 2, Characters: 10, CodePoints: 10}},
		{"cafe\u0301 42", Stats{Lines: 1, Words: 2, Characters: 7, CodePoints: 8}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Count(tt.text)); diff != "" {
			t.Errorf("Count(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

type fakeAPI struct {
	plugin.EditorAPI
	text    string
	ranges  []types.Decoration
	command plugin.CommandFunc
	status  string
}

func (f *fakeAPI) Text() string               { return f.text }
func (f *fakeAPI) Ranges() []types.Decoration { return f.ranges }
func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	f.command = fn
	return nil
}
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.status = fmt.Sprintf(format, args...)
}

func TestCommandCountsSelections(t *testing.T) {
	api := &fakeAPI{text: "one two three"}
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatal(err)
	}

	if err := api.command(nil); err != nil {
		t.Fatal(err)
	}
	if want := "Document: Lines: 1, Words: 3, Chars: 13, Code points: 13"; api.status != want {
		t.Errorf("status = %q, want %q", api.status, want)
	}

	api.ranges = []types.Decoration{types.NewDecoration(types.TypeSelection, 8, 4)}
	if err := api.command(nil); err != nil {
		t.Fatal(err)
	}
	if want := "Selection: Lines: 1, Words: 1, Chars: 4, Code points: 4"; api.status != want {
		t.Errorf("status = %q, want %q", api.status, want)
	}
}
