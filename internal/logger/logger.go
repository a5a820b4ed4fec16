// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)
)

// Init installs a logger writing to output at the given level with no filters.
func Init(level slog.Level, output io.Writer) {
	install(level, output, nil)
}

// Setup installs a logger from cfg and returns the opened log file, if any,
// so the caller can close it on exit.
func Setup(cfg Config) (io.Closer, error) {
	var output io.Writer = os.Stderr
	var closer io.Closer
	if cfg.LogFilePath != "" && cfg.LogFilePath != "-" {
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
		}
		output, closer = f, f
	}
	install(cfg.Level(), output, cfg.filters())
	return closer, nil
}

func install(level slog.Level, output io.Writer, f *filters) {
	if output == nil {
		output = io.Discard
	}
	logLevel.Set(level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	var handler slog.Handler = slog.NewTextHandler(output, &opts)
	if f != nil {
		handler = newFilteringHandler(handler, f)
	}

	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()
}

// Get retrieves the configured logger instance.
// Until Init or Setup is called, output is discarded.
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	}
	return defaultLogger
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// DebugTagf logs a debug message carrying a filterable tag.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs an info message carrying a filterable tag.
func InfoTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, tag, format, args...)
}

// WarnTagf logs a warning carrying a filterable tag.
func WarnTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, tag, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}
