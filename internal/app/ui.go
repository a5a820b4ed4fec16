package app

import (
	"github.com/bethropolis/tidemark/internal/config"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/modehandler"
	"github.com/bethropolis/tidemark/internal/render"
)

// draw redraws the screen.
func (a *App) draw() {
	a.updateStatusBarContent()
	a.tuiManager.Draw(a.editor, a.themeManager.Current(), a.statusBar)
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.filePath, a.IsModified())
	a.statusBar.SetCursorInfo(a.editor.CursorPosition(), a.editor.Length(), len(a.editor.Ranges()))

	switch a.modeHandler.GetCurrentMode() {
	case modehandler.ModeCommand:
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	case modehandler.ModeFind:
		a.statusBar.SetTemporaryMessage("/%s", a.modeHandler.GetFindBuffer())
	}
}

// Layout lays the document out at the current screen width.
func (a *App) Layout() *render.Layout {
	return a.tuiManager.Layout(a.editor.Text())
}

// PageHeight returns the number of text lines on screen.
func (a *App) PageHeight() int {
	_, height := a.tuiManager.Size()
	return max(height-config.StatusBarHeight, 1)
}

// setTheme activates a theme by name.
func (a *App) setTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: a.themeManager.Current().Name})
	return nil
}
