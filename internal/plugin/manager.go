// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string // registration order
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.DebugTagf("plugin", "Plugin Manager: Registered plugin '%s'", name)
	return nil
}

func (m *Manager) snapshot() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		result = append(result, m.plugins[name])
	}
	return result
}

// InitializePlugins calls Initialize on every plugin in registration
// order. Failures are logged and do not stop the others.
func (m *Manager) InitializePlugins(api EditorAPI) {
	plugins := m.snapshot()
	logger.DebugTagf("plugin", "Plugin Manager: Initializing %d plugins...", len(plugins))
	for _, plugin := range plugins {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
		}
	}
}

// ShutdownPlugins calls Shutdown on all plugins, newest first.
func (m *Manager) ShutdownPlugins() {
	plugins := m.snapshot()
	slices.Reverse(plugins)
	for _, plugin := range plugins {
		if err := plugin.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugin.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
