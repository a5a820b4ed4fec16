package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter traces every filtering decision to stderr.
var debugFilter bool

// SetFilterDebug toggles tracing of filter decisions.
func SetFilterDebug(on bool) {
	debugFilter = on
}

// filteringHandler wraps a base slog.Handler to add tag/package/file filtering.
type filteringHandler struct {
	base    slog.Handler
	filters *filters
}

func newFilteringHandler(base slog.Handler, f *filters) *filteringHandler {
	return &filteringHandler{base: base, filters: f}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle drops records that fail a filter and forwards the rest.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.filters == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg, file, ok := recordSource(r); ok {
		if !allows(h.filters.enabledPackages, h.filters.disabledPackages, pkg) {
			h.trace("package %q filtered: %s", pkg, r.Message)
			return nil
		}
		if !allows(h.filters.enabledFiles, h.filters.disabledFiles, file) {
			h.trace("file %q filtered: %s", file, r.Message)
			return nil
		}
	}

	tag, tagged := recordTag(r)
	switch {
	case tagged && !allows(h.filters.enabledTags, h.filters.disabledTags, tag):
		h.trace("tag %q filtered: %s", tag, r.Message)
		return nil
	case !tagged && h.filters.enabledTags != nil:
		h.trace("untagged record filtered: %s", r.Message)
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// recordSource resolves the package directory and file name of the caller.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

func recordTag(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			ok = true
			return false
		}
		return true
	})
	return tag, ok
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.filters)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.filters)
}
