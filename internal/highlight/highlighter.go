// Package highlight turns tree-sitter captures into "syntax.*"
// decorations over a text snapshot.
package highlight

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/bethropolis/tidemark/internal/utils"
	sitter "github.com/smacker/go-tree-sitter"
)

// TypePrefix starts the type of every decoration this package produces.
const TypePrefix = "syntax."

// Highlighter parses text and runs the language's highlight query.
// It is safe for concurrent use; calls are serialized.
type Highlighter struct {
	mu      sync.Mutex
	parser  *sitter.Parser
	queries map[*Language]*sitter.Query
}

// NewHighlighter creates a new highlighter instance.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		parser:  sitter.NewParser(),
		queries: make(map[*Language]*sitter.Query),
	}
}

// query returns the compiled query for l, compiling it on first use.
func (h *Highlighter) query(l *Language) (*sitter.Query, error) {
	if q, ok := h.queries[l]; ok {
		return q, nil
	}
	src, err := l.Query()
	if err != nil {
		return nil, err
	}
	q, err := sitter.NewQuery(src, l.TreeSitterLang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed for %s: %w", l.Name, err)
	}
	h.queries[l] = q
	return q, nil
}

// Highlight parses text with lang and returns one decoration per
// non-empty capture, typed TypePrefix plus the capture name, with
// code point offsets. The result is sorted by start offset.
func (h *Highlighter) Highlight(ctx context.Context, text string, lang *Language) ([]types.Decoration, error) {
	if lang == nil {
		return nil, fmt.Errorf("no language provided for highlighting")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	q, err := h.query(lang)
	if err != nil {
		return nil, err
	}

	source := []byte(text)
	h.parser.SetLanguage(lang.TreeSitterLang)
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	offsets := utils.ByteToRuneOffsets(source)
	seen := make(map[types.Decoration]struct{})
	var result []types.Decoration
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			start := offsets[min(int(capture.Node.StartByte()), len(source))]
			end := offsets[min(int(capture.Node.EndByte()), len(source))]
			if end <= start {
				continue
			}
			d := types.NewDecoration(TypePrefix+q.CaptureNameForId(capture.Index), start, end)
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			result = append(result, d)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b types.Decoration) int {
		return a.Start() - b.Start()
	})
	logger.DebugTagf("highlight", "Highlight: %s produced %d decorations", lang.Name, len(result))
	return result, nil
}

// Close releases the parser and compiled queries.
func (h *Highlighter) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for l, q := range h.queries {
		q.Close()
		delete(h.queries, l)
	}
	h.parser.Close()
}
