package app

import (
	"github.com/bethropolis/tidemark/internal/core/remap"
	"github.com/bethropolis/tidemark/internal/event"
	"github.com/bethropolis/tidemark/internal/highlight"
	"github.com/bethropolis/tidemark/internal/logger"
)

// subscribe wires the app's reactions to editor events.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferChangedForHighlighting)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferChangedForHighlighting)
	a.eventManager.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.ThemeChangedData); ok {
			logger.Debugf("App: theme changed to '%s'", data.Name)
		}
		return false
	})
}

// handleBufferChangedForHighlighting requests a highlight pass over the
// new text.
func (a *App) handleBufferChangedForHighlighting(e event.Event) bool {
	a.scheduled = a.highlighter.Schedule(a.editor.Text())
	return false
}

// deliverHighlights runs on the highlighter's goroutine and hands the
// result to the event loop.
func (a *App) deliverHighlights(res highlight.Result) {
	if err := a.post(res); err != nil {
		logger.Debugf("App: dropping highlight pass %d: %v", res.Version, err)
	}
}

// applyHighlights installs a finished pass. A pass computed for older text
// is re-anchored onto the current text; it stands in until the newer pass
// already scheduled arrives.
func (a *App) applyHighlights(res highlight.Result) {
	if res.Version <= a.applied {
		return
	}
	if res.Err != nil {
		logger.WarnTagf("highlight", "App: highlight pass %d failed: %v", res.Version, res.Err)
		return
	}

	ds := res.Decorations
	if current := a.editor.Text(); current != res.Text {
		ds = remap.Upgrade(res.Text, current, ds)
		logger.DebugTagf("highlight", "App: re-anchored pass %d (latest %d)", res.Version, a.scheduled)
	}
	a.applied = res.Version
	a.editor.ReplaceDecorationsByPrefix(highlight.TypePrefix, ds)
}
