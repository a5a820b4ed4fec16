package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave plugin periodically saves the document when it has unsaved
// changes. The ticker runs on its own goroutine; the save itself is
// posted to the event loop.
type AutoSave struct {
	api plugin.EditorAPI

	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	p.readConfig()
	logger.Infof("%s initialized. Enabled: %v, Interval: %v", p.Name(), p.enabled, p.interval)

	if p.enabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(p.interval)
	}
	return nil
}

func (p *AutoSave) readConfig() {
	name := p.Name()
	if val, ok := p.api.GetPluginConfigValue(name, "enabled"); ok {
		if b, isBool := val.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, val, p.enabled)
		}
	}

	val, ok := p.api.GetPluginConfigValue(name, "interval")
	if !ok {
		return
	}
	str, isStr := val.(string)
	if !isStr {
		logger.Warnf("%s: Invalid type for 'interval' config (%T), using default (%v)", name, val, p.interval)
		return
	}
	interval, err := time.ParseDuration(str)
	switch {
	case err != nil:
		logger.Warnf("%s: Invalid format for 'interval' config ('%s'): %v. Using default (%v)", name, str, err, p.interval)
	case interval <= 0:
		logger.Warnf("%s: 'interval' config must be positive ('%s'). Using default (%v)", name, str, p.interval)
	default:
		p.interval = interval
	}
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.api.Post(p.saveIfModified); err != nil {
				logger.Debugf("%s: %v, exiting saver loop.", p.Name(), err)
				return
			}
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified runs on the event loop.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsBufferModified() {
		return
	}
	filePath := p.api.FilePath()
	if filePath == "" {
		logger.Debugf("%s: Buffer is modified but has no name, skipping auto-save.", p.Name())
		return
	}
	if err := p.api.SaveBuffer(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		return
	}
	logger.Infof("%s: Auto-saved '%s'", p.Name(), filePath)
}
