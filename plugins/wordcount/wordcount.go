// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/rivo/uniseg"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts lines, words and characters of the document or of the
// current selections.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats holds the counts reported by :wc.
type Stats struct {
	Lines      int
	Words      int
	Characters int // grapheme clusters
	CodePoints int
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d, Words: %d, Chars: %d, Code points: %d", s.Lines, s.Words, s.Characters, s.CodePoints)
}

// executeWordCount is the function called when the :wc command runs.
func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}

	text := p.api.Text()
	scope := "Document"
	if ranges := p.api.Ranges(); len(ranges) > 0 {
		runes := []rune(text)
		parts := make([]string, 0, len(ranges))
		for _, sel := range ranges {
			parts = append(parts, string(runes[sel.Start():sel.End()]))
		}
		text = strings.Join(parts, "\n")
		scope = "Selection"
	}

	p.api.SetStatusMessage("%s: %s", scope, Count(text))
	return nil
}

// Count computes the statistics of text. Words follow Unicode word
// segmentation; segments without a letter or digit are not words.
func Count(text string) Stats {
	s := Stats{
		Characters: uniseg.GraphemeClusterCount(text),
		CodePoints: len([]rune(text)),
	}
	if text != "" {
		s.Lines = strings.Count(text, "\n") + 1
	}

	state := -1
	for rest := text; rest != ""; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.IndexFunc(word, isWordRune) >= 0 {
			s.Words++
		}
	}
	return s
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
