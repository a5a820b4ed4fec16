// Package marks keeps a document's decorations in a TOML sidecar file.
//
// The sidecar also stores the text the decorations were anchored to, so a
// document edited by another program gets its decorations carried across
// the difference when it is opened again.
package marks

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidemark/internal/core/remap"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
)

// Suffix is appended to the document's name to form the sidecar name.
const Suffix = ".marks.toml"

// transientPrefixes name derived decorations that are recomputed rather
// than stored.
var transientPrefixes = []string{"syntax.", "search."}

type file struct {
	Text        string `toml:"text"`
	Decorations []mark `toml:"decoration"`
}

type mark struct {
	Type   string `toml:"type"`
	ID     string `toml:"id,omitempty"`
	Anchor int    `toml:"anchor"`
	Focus  int    `toml:"focus"`
}

// Path returns the sidecar location for docPath: a hidden file in the
// same directory.
func Path(docPath string) string {
	dir, name := filepath.Split(docPath)
	return filepath.Join(dir, "."+name+Suffix)
}

// Persistent reports whether d belongs in the sidecar. Selections and
// derived decorations do not.
func Persistent(d types.Decoration) bool {
	if d.Type == types.TypeSelection || d.Type == types.TypeCursor {
		return false
	}
	for _, prefix := range transientPrefixes {
		if strings.HasPrefix(d.Type, prefix) {
			return false
		}
	}
	return true
}

// Save writes the persistent decorations of ds, anchored to text, next to
// docPath. With none to keep, an existing sidecar is removed.
func Save(docPath, text string, ds []types.Decoration) error {
	path := Path(docPath)
	f := file{Text: text}
	for _, d := range ds {
		if Persistent(d) {
			f.Decorations = append(f.Decorations, mark{Type: d.Type, ID: d.ID, Anchor: d.Anchor, Focus: d.Focus})
		}
	}

	if len(f.Decorations) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove marks '%s': %w", path, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("failed to encode marks: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write marks '%s': %w", path, err)
	}
	logger.DebugTagf("marks", "Saved %d decorations to %s", len(f.Decorations), path)
	return nil
}

// Load reads the sidecar of docPath and returns its decorations anchored
// to text. A missing sidecar yields none.
func Load(docPath, text string) ([]types.Decoration, error) {
	path := Path(docPath)
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read marks '%s': %w", path, err)
	}

	ds := make([]types.Decoration, 0, len(f.Decorations))
	for _, m := range f.Decorations {
		ds = append(ds, types.Decoration{Type: m.Type, ID: m.ID, Range: types.NewRange(m.Anchor, m.Focus)})
	}
	if f.Text != text {
		logger.InfoTagf("marks", "%s changed since its marks were saved; re-anchoring %d decorations", docPath, len(ds))
		ds = remap.Upgrade(f.Text, text, ds)
	}
	return ds, nil
}
