// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/theme"
	"github.com/bethropolis/tidemark/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document ---

func (api *appEditorAPI) Text() string {
	return api.app.editor.Text()
}

func (api *appEditorAPI) Length() int {
	return api.app.editor.Length()
}

func (api *appEditorAPI) FilePath() string {
	return api.app.filePath
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.IsModified()
}

func (api *appEditorAPI) ReplaceText(start, end int, text string) {
	api.app.editor.ReplaceText(start, end, text)
}

// --- Caret & Decorations ---

func (api *appEditorAPI) CursorPosition() int {
	return api.app.editor.CursorPosition()
}

func (api *appEditorAPI) MoveCursor(offset int) {
	api.app.editor.MoveCursor(offset)
}

func (api *appEditorAPI) Ranges() []types.Decoration {
	return api.app.editor.Ranges()
}

func (api *appEditorAPI) Decorations() []types.Decoration {
	return api.app.editor.Decorations()
}

func (api *appEditorAPI) AddDecoration(d types.Decoration) {
	api.app.editor.AddDecoration(d)
}

func (api *appEditorAPI) RemoveDecoration(d types.Decoration) {
	api.app.editor.RemoveDecoration(d)
}

func (api *appEditorAPI) NormalizeDecorations() {
	api.app.editor.NormalizeDecorations()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) event.Subscription {
	return api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

// --- Theme Access ---

func (api *appEditorAPI) SetTheme(name string) error {
	return api.app.setTheme(name)
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Application ---

func (api *appEditorAPI) SaveBuffer() error {
	return api.app.Save()
}

// RequestQuit quits unless there are unsaved changes and force is unset.
func (api *appEditorAPI) RequestQuit(force bool) {
	if !force && api.app.IsModified() {
		api.app.statusBar.SetTemporaryMessage("Unsaved changes! Use :q! to discard them.")
		return
	}
	api.app.Quit()
}

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}

func (api *appEditorAPI) Post(fn func()) error {
	return api.app.post(fn)
}
