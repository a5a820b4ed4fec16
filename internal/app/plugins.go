package app

import (
	"fmt"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/plugins/autosave"
	"github.com/bethropolis/tidemark/plugins/wordcount"
)

// pluginConstructors lists the built-in plugins. Adding a new plugin
// means adding its constructor here.
var pluginConstructors = []func() plugin.Plugin{
	wordcount.New,
	autosave.New,
}

// registerPlugins registers all known plugins with the manager. It
// returns the first failure after trying every plugin.
func registerPlugins(pm *plugin.Manager) error {
	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
