// Package logger provides configurable logging capabilities
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (e.g., "debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use empty or "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// --- Filtering Options ---

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages originating from these packages (if non-empty).
	// Package name is the immediate directory name (e.g., "core", "decoration", "remap").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages originating from these filenames (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles prevents logging from these filenames. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// filters is the processed, lowercase form of the Config lists.
type filters struct {
	enabledTags, disabledTags         filterSet
	enabledPackages, disabledPackages filterSet
	enabledFiles, disabledFiles       filterSet
}

func (c Config) filters() *filters {
	return &filters{
		enabledTags:      newFilterSet(c.EnabledTags),
		disabledTags:     newFilterSet(c.DisabledTags),
		enabledPackages:  newFilterSet(c.EnabledPackages),
		disabledPackages: newFilterSet(c.DisabledPackages),
		enabledFiles:     newFilterSet(c.EnabledFiles),
		disabledFiles:    newFilterSet(c.DisabledFiles),
	}
}

// filterSet is nil when the list was empty, which means "no restriction".
type filterSet map[string]struct{}

func newFilterSet(items []string) filterSet {
	set := make(filterSet, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func (s filterSet) has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.ToLower(key)]
	return ok
}

// allows applies an enabled/disabled pair to key. Disabled wins.
func allows(enabled, disabled filterSet, key string) bool {
	if disabled.has(key) {
		return false
	}
	if enabled != nil && !enabled.has(key) {
		return false
	}
	return true
}
