// Package config loads the application settings: defaults, then a TOML
// file, then command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidemark/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Theme  ThemeConfig   `toml:"theme"`
	// Plugins holds free-form settings per plugin name, read through
	// the plugin API.
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	MaxHistory      int  `toml:"max_history"`
	SystemClipboard bool `toml:"system_clipboard"`
	// HighlightDelayMs is how long typing must pause before syntax
	// decorations are recomputed.
	HighlightDelayMs int `toml:"highlight_delay_ms"`
	// Marks keeps decorations in a sidecar file next to the document.
	Marks bool `toml:"marks"`
}

// HighlightDelay returns HighlightDelayMs as a duration.
func (e EditorConfig) HighlightDelay() time.Duration {
	return time.Duration(e.HighlightDelayMs) * time.Millisecond
}

// ThemeConfig selects the decoration theme.
type ThemeConfig struct {
	// Path is a TOML theme file. Empty uses the built-in theme.
	Path string `toml:"path"`
	// Name selects a theme by name after Path and the themes directory
	// have been loaded.
	Name string `toml:"name"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:         DefaultTabWidth,
			MaxHistory:       DefaultMaxHistory,
			SystemClipboard:  SystemClipboard,
			HighlightDelayMs: int(DefaultHighlightDelay / time.Millisecond),
			Marks:            DefaultMarks,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// ThemesDir returns the directory searched for TOML theme files.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(configDir, AppName, ThemesDirName), nil
}

// PluginValue returns a plugin setting.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	settings, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := settings[key]
	return v, ok
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep
// their current values. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) ([]string, error) {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.HighlightDelayMs < 0 {
		c.Editor.HighlightDelayMs = defaults.Editor.HighlightDelayMs
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration from defaults, the TOML file at
// configFilePath (or DefaultPath when empty) and flag overrides. The
// returned list names keys the file set that no setting recognizes.
// The logger is not running yet, so nothing is logged here.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	var undecoded []string
	var loadErr error
	if path != "" {
		undecoded, loadErr = loadFromFile(cfg, path)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()

	return cfg, undecoded, loadErr
}
