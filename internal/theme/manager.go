// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
)

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
}

// NewManager creates a manager holding the built-in theme, active.
func NewManager() *Manager {
	builtin := TidemarkDark
	return &Manager{
		themes:      map[string]*Theme{strings.ToLower(builtin.Name): &builtin},
		activeTheme: &builtin,
	}
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory
// is not an error. Files that fail to parse are logged and skipped.
func (m *Manager) LoadThemesFromDir(dir string) (int, error) {
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.InfoTagf("theme", "Theme directory '%s' does not exist. No custom themes loaded.", dir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		theme, err := LoadThemeFromFile(path)
		if err != nil {
			logger.WarnTagf("theme", "Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.Add(theme)
		loaded++
	}
	logger.InfoTagf("theme", "Loaded %d custom themes from %s.", loaded, dir)
	return loaded, nil
}

// Add registers theme, replacing any theme with the same name.
func (m *Manager) Add(theme *Theme) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := strings.ToLower(theme.Name)
	if existing, ok := m.themes[key]; ok {
		logger.WarnTagf("theme", "Theme '%s' overrides existing theme '%s'", theme.Name, existing.Name)
		if m.activeTheme == existing {
			m.activeTheme = theme
		}
	}
	m.themes[key] = theme
}

// LoadFile loads a theme file, registers it and makes it active.
func (m *Manager) LoadFile(path string) (*Theme, error) {
	theme, err := LoadThemeFromFile(path)
	if err != nil {
		return nil, err
	}
	m.Add(theme)
	if err := m.SetTheme(theme.Name); err != nil {
		return nil, err
	}
	return theme, nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.InfoTagf("theme", "Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	slices.Sort(names)
	return names
}
