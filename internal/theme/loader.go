// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef represents a single style definition in the TOML file
type TomlStyleDef struct {
	Fg            *string `toml:"fg"` // pointers detect missing values
	Bg            *string `toml:"bg"`
	Bold          *bool   `toml:"bold"`
	Italic        *bool   `toml:"italic"`
	Underline     *bool   `toml:"underline"`
	StrikeThrough *bool   `toml:"strikethrough"`
	Reverse       *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file. Style keys are
// decoration types or UI names; dotted keys must be quoted in TOML.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML file and converts it to a Theme object
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var tomlTheme TomlTheme
	metadata, err := toml.DecodeFile(filePath, &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}

	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.WarnTagf("theme", "Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, undecoded)
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style, len(tomlTheme.Styles)+1),
	}
	theme.Styles[StyleDefault] = tcell.StyleDefault

	// Default and the UI styles are complete styles built on Default.
	// Decoration styles stay overlays so they can be layered.
	base := tcell.StyleDefault
	if def, ok := tomlTheme.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", theme.Name, err)
		}
		theme.Styles[StyleDefault] = base
	}

	for name, def := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		inherit := tcell.StyleDefault
		if isUIStyle(name) {
			inherit = base
		}
		style, err := convertTomlStyle(def, inherit)
		if err != nil {
			logger.WarnTagf("theme", "Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.DebugTagf("theme", "Loaded theme '%s' from '%s' (%d styles)", theme.Name, filePath, len(theme.Styles))
	return theme, nil
}

func isUIStyle(name string) bool {
	return strings.HasPrefix(name, StyleStatusBar)
}

// convertTomlStyle converts the TOML definition to a tcell.Style, inheriting from a base
func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base

	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.StrikeThrough != nil {
		style = style.StrikeThrough(*def.StrikeThrough)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, "reset", "default" and tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
