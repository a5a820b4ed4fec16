// Package remap re-anchors decorations made against one version of a text
// onto another version. It replays a character diff through a private
// editor, so the result is exactly what typing the change would produce.
package remap

import (
	"github.com/bethropolis/tidemark/internal/core"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// Remapper replays diffs produced by its Differ.
type Remapper struct {
	differ Differ
}

// New creates a Remapper. A nil differ selects DiffMatchPatch.
func New(differ Differ) *Remapper {
	if differ == nil {
		differ = DiffMatchPatch{}
	}
	return &Remapper{differ: differ}
}

// Upgrade returns decorations, anchored against oldText, moved onto newText.
// The input slice is not modified.
func (r *Remapper) Upgrade(oldText, newText string, decorations []types.Decoration) []types.Decoration {
	e := core.NewEditor()
	e.SetText(oldText)
	e.SetDecorations(decorations)

	steps := 0
	for op := range r.differ.Diff([]rune(oldText), []rune(newText)) {
		switch op.Kind {
		case OpRetain:
			e.MoveCursorBy(op.Count)
		case OpInsert:
			e.Insert(op.Text)
		case OpDelete:
			at := e.CursorPosition()
			e.AddRange(at, at+op.Count)
			e.Backspace()
		}
		steps++
	}

	out := e.Decorations()
	logger.DebugTagf("remap", "Upgrade: %d ops, %d -> %d decorations", steps, len(decorations), len(out))
	return out
}

// Upgrade remaps with the default differ.
func Upgrade(oldText, newText string, decorations []types.Decoration) []types.Decoration {
	return New(nil).Upgrade(oldText, newText, decorations)
}
