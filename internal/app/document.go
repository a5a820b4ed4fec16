package app

import (
	"errors"

	"github.com/bethropolis/tidemark/internal/buffer"
	"github.com/bethropolis/tidemark/internal/core/remap"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/highlight"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/marks"
	"github.com/bethropolis/tidemark/internal/types"
)

// load opens path as the document, together with its marks.
func (a *App) load(path string) error {
	text, err := buffer.Load(path)
	if err != nil {
		return err
	}

	a.filePath = path
	a.savedText = text
	a.setLanguage()
	a.editor.SetText(text)
	a.loadMarks(text)
	logger.Infof("App: loaded '%s' (%d code points)", path, a.editor.Length())
	return nil
}

func (a *App) loadMarks(text string) {
	if !a.cfg.Editor.Marks || a.filePath == "" {
		return
	}
	ds, err := marks.Load(a.filePath, text)
	if err != nil {
		logger.Warnf("App: %v", err)
		a.statusBar.SetTemporaryMessage("Could not read marks: %v", err)
		return
	}
	if len(ds) > 0 {
		a.editor.SetDecorations(ds)
	}
}

func (a *App) setLanguage() {
	lang := highlight.ForFile(a.filePath)
	a.highlighter.SetLanguage(lang)
	if lang != nil {
		a.statusBar.SetLanguage(lang.Name)
	} else {
		a.statusBar.SetLanguage("")
	}
}

// Save writes the document and its marks.
func (a *App) Save() error {
	if a.filePath == "" {
		return errors.New("no file name")
	}
	text := a.editor.Text()
	if err := buffer.Save(a.filePath, text); err != nil {
		return err
	}
	a.savedText = text
	a.editor.GetBuffer().ClearModified()

	a.statusBar.SetTemporaryMessage("Saved %s", a.filePath)
	if a.cfg.Editor.Marks {
		if err := marks.Save(a.filePath, text, a.editor.Decorations()); err != nil {
			logger.Warnf("App: %v", err)
			a.statusBar.SetTemporaryMessage("Saved %s, but marks failed: %v", a.filePath, err)
		}
	}
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.filePath})
	return nil
}

// Reload re-reads the file from disk, discarding unsaved edits. The
// current decorations are carried onto the new text, and the caret stays
// where it was as far as the new text allows.
func (a *App) Reload() error {
	if a.filePath == "" {
		return errors.New("no file name")
	}
	text, err := buffer.Load(a.filePath)
	if err != nil {
		return err
	}

	var kept []types.Decoration
	for _, d := range a.editor.Decorations() {
		if marks.Persistent(d) {
			kept = append(kept, d)
		}
	}
	if current := a.editor.Text(); current != text {
		kept = remap.Upgrade(current, text, kept)
	}
	caret := a.editor.CursorPosition()

	a.savedText = text
	a.editor.SetText(text)
	a.editor.SetDecorations(kept)
	a.editor.MoveCursor(caret)
	a.statusBar.SetTemporaryMessage("Reloaded %s", a.filePath)
	return nil
}

// IsModified reports whether the document differs from the file.
func (a *App) IsModified() bool {
	return a.editor.Text() != a.savedText
}
