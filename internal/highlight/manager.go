package highlight

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/bethropolis/tidemark/internal/utils"
)

// Result is one finished highlight pass. Decorations are anchored to
// Text, which may be older than the document by the time it arrives.
type Result struct {
	Version     uint64
	Text        string
	Decorations []types.Decoration
	Err         error
}

// Manager handles debounced asynchronous syntax highlighting.
type Manager struct {
	highlighter *Highlighter
	delay       time.Duration
	deliver     func(Result) // called from a background goroutine

	debouncer utils.Debouncer

	mu      sync.Mutex // protects the fields below
	lang    *Language
	version uint64
	cancel  context.CancelFunc
}

// NewManager creates a manager that waits delay after the last Schedule
// before highlighting, then hands the result to deliver.
func NewManager(h *Highlighter, delay time.Duration, deliver func(Result)) *Manager {
	return &Manager{
		highlighter: h,
		delay:       delay,
		deliver:     deliver,
	}
}

// SetLanguage selects the grammar for later passes. nil disables
// highlighting; passes then deliver no decorations.
func (m *Manager) SetLanguage(l *Language) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lang = l
}

// Language returns the current grammar, or nil.
func (m *Manager) Language() *Language {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lang
}

// Schedule requests a pass over a snapshot of the text. Any pending or
// running pass is abandoned. It returns the version the pass will carry.
func (m *Manager) Schedule(text string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
	}
	var ctx context.Context
	ctx, m.cancel = context.WithCancel(context.Background())
	m.version++
	version, lang := m.version, m.lang

	logger.DebugTagf("highlight", "HighlightManager: scheduling pass %d in %v", version, m.delay)
	m.debouncer.Debounce(m.delay, func() {
		m.run(ctx, version, text, lang)
	})
	return version
}

func (m *Manager) run(ctx context.Context, version uint64, text string, lang *Language) {
	res := Result{Version: version, Text: text}
	if lang != nil {
		res.Decorations, res.Err = m.highlighter.Highlight(ctx, text, lang)
	}
	if errors.Is(res.Err, context.Canceled) || ctx.Err() != nil {
		logger.DebugTagf("highlight", "HighlightManager: pass %d cancelled", version)
		return
	}
	if res.Err != nil {
		logger.WarnTagf("highlight", "HighlightManager: pass %d failed: %v", version, res.Err)
	}
	m.deliver(res)
}

// Shutdown cancels any pending or running pass.
func (m *Manager) Shutdown() {
	m.debouncer.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
