package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	TabWidth        int
	MaxHistory      int
	ThemePath       string
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	SystemClipboard bool
}

// NewFlags defines the application's flags on a new flag set named name.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	f.fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.fs.IntVar(&f.TabWidth, "tabwidth", 0, "Number of spaces per tab - Overrides config file")
	f.fs.IntVar(&f.MaxHistory, "max-history", 0, "Number of undo steps to keep - Overrides config file")
	f.fs.StringVar(&f.ThemePath, "theme", "", "Path to a TOML theme file - Overrides config file")
	f.fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Mirror copies to the system clipboard")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with the flags that were set explicitly.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "tabwidth":
			if f.TabWidth > 0 {
				cfg.Editor.TabWidth = f.TabWidth
			}
		case "max-history":
			if f.MaxHistory > 0 {
				cfg.Editor.MaxHistory = f.MaxHistory
			}
		case "theme":
			cfg.Theme.Path = f.ThemePath
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
