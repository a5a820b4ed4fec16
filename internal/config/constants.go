package config

import "time"

// Base application details
const AppName = "tidemark"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidemark.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultMaxHistory = 200
const DefaultHighlightDelay = 150 * time.Millisecond
const SystemClipboard = true
const DefaultMarks = true
