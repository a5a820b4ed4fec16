// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Style names used outside of decoration types.
const (
	StyleDefault          = "Default"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarDirty   = "StatusBarModified"
)

// Theme maps decoration types and UI element names to styles.
// Decoration styles are overlays: unset colors let the layer below show.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// lookup finds the style for name, dropping trailing dotted segments
// until something matches: "syntax.function.call", "syntax.function",
// then "syntax".
func (t *Theme) lookup(name string) (tcell.Style, bool) {
	for key := name; key != ""; {
		if style, ok := t.Styles[key]; ok {
			if key != name {
				logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using '%s'", t.Name, name, key)
			}
			return style, true
		}
		dot := strings.LastIndex(key, ".")
		if dot == -1 {
			break
		}
		key = key[:dot]
	}
	return tcell.StyleDefault, false
}

// GetStyle returns the style for name, falling back to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.lookup(name); ok {
		return style
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}
	return tcell.StyleDefault
}

// Compose layers the styles of ds, in order, over the Default style.
// Types without a style contribute nothing.
func (t *Theme) Compose(ds []types.Decoration) tcell.Style {
	result := t.GetStyle(StyleDefault)
	for _, d := range ds {
		if style, ok := t.lookup(d.Type); ok {
			result = overlay(result, style)
		}
	}
	return result
}

// overlay applies the set colors and attributes of top onto base.
func overlay(base, top tcell.Style) tcell.Style {
	fg, bg, attrs := top.Decompose()
	if fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	return base.Attributes(baseAttrs(base) | attrs)
}

func baseAttrs(s tcell.Style) tcell.AttrMask {
	_, _, attrs := s.Decompose()
	return attrs
}

// TidemarkDark is the built-in theme.
var TidemarkDark = newTidemarkDark()

func newTidemarkDark() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)

	plain := tcell.StyleDefault

	return Theme{
		Name:   "Tidemark Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// UI
			StyleDefault:          plain.Background(tcell.ColorReset).Foreground(foreground),
			StyleStatusBar:        plain.Background(background).Foreground(foreground),
			StyleStatusBarDirty:   plain.Background(background).Foreground(yellow),
			StyleStatusBarMessage: plain.Background(background).Foreground(foreground).Bold(true),

			// Rich text
			types.TypeSelection: plain.Reverse(true),
			"bold":              plain.Bold(true),
			"italic":            plain.Italic(true),
			"underline":         plain.Underline(true),
			"strikethrough":     plain.StrikeThrough(true),
			"highlight":         plain.Background(tcell.NewHexColor(0x4b4b2a)),
			"link":              plain.Foreground(blue).Underline(true),
			"comment":           plain.Background(tcell.NewHexColor(0x3a3358)),
			"search":            plain.Background(tcell.NewHexColor(0x5c4a1e)).Bold(true),

			// Syntax
			"syntax.keyword":          plain.Foreground(blue).Bold(true),
			"syntax.string":           plain.Foreground(green),
			"syntax.comment":          plain.Foreground(comment).Italic(true),
			"syntax.number":           plain.Foreground(orange),
			"syntax.constant":         plain.Foreground(orange),
			"syntax.type":             plain.Foreground(cyan),
			"syntax.namespace":        plain.Foreground(cyan),
			"syntax.function":         plain.Foreground(yellow),
			"syntax.function.builtin": plain.Foreground(cyan).Italic(true),
			"syntax.property":         plain.Foreground(foreground),
			"syntax.escape":           plain.Foreground(magenta),
		},
	}
}
