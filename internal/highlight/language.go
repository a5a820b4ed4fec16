package highlight

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

// Language represents a programming language with its highlight query.
type Language struct {
	// Name is the display name of the language
	Name string

	// TreeSitterLang is the tree-sitter grammar
	TreeSitterLang *sitter.Language

	// Extensions maps file extensions to this language
	Extensions []string

	// QueryPath is the directory under queries/ holding highlights.scm
	QueryPath string
}

// Query returns the highlight query source for l.
func (l *Language) Query() ([]byte, error) {
	if l.QueryPath == "" {
		return nil, fmt.Errorf("no query path defined for language %s", l.Name)
	}
	path := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
	query, err := fs.ReadFile(embeddedQueries, path)
	if err != nil {
		return nil, fmt.Errorf("loading query for %s: %w", l.Name, err)
	}
	return query, nil
}

var (
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	initOnce sync.Once
)

func registerBuiltins() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
		for _, l := range []*Language{
			{Name: "Go", TreeSitterLang: gosrc.GetLanguage(), Extensions: []string{".go"}, QueryPath: "go"},
			{Name: "Python", TreeSitterLang: pythonsrc.GetLanguage(), Extensions: []string{".py", ".pyw"}, QueryPath: "python"},
			{Name: "JavaScript", TreeSitterLang: jssrc.GetLanguage(), Extensions: []string{".js", ".mjs", ".cjs"}, QueryPath: "javascript"},
			{Name: "Rust", TreeSitterLang: rustsrc.GetLanguage(), Extensions: []string{".rs"}, QueryPath: "rust"},
		} {
			register(l)
		}
	})
}

// Register adds a language to the registry. Later registrations win
// for a shared extension.
func Register(l *Language) {
	registerBuiltins()
	register(l)
}

func register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, l)
	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.WarnTagf("highlight", "Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}
}

// ForFile returns the language for a file path, or nil.
func ForFile(filePath string) *Language {
	registerBuiltins()

	registry.RLock()
	defer registry.RUnlock()
	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// Languages returns all registered languages.
func Languages() []*Language {
	registerBuiltins()

	registry.RLock()
	defer registry.RUnlock()
	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
