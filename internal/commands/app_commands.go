// Package commands registers the built-in ':' commands.
package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bethropolis/tidemark/internal/logger"
	"github.com/bethropolis/tidemark/internal/plugin"
	"github.com/bethropolis/tidemark/internal/types"
)

// RegisterAppCommands registers built-in commands like :theme and :w.
func RegisterAppCommands(api plugin.EditorAPI) {
	RegisterThemeCommands(api)
	RegisterFileCommands(api)
	RegisterDecorationCommands(api)
}

func register(api plugin.EditorAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api plugin.EditorAPI) {
	register(api, "theme", func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}
		themeName := strings.Join(args, " ") // theme names may contain spaces
		if err := api.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(api.ListThemes(), ", "))
		}
		api.SetStatusMessage("Theme set to: %s", api.GetTheme().Name)
		return nil
	})
	register(api, "themes", func(args []string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	})
}

// RegisterFileCommands registers :w, :q, :q!, :wq and :goto.
func RegisterFileCommands(api plugin.EditorAPI) {
	write := func(args []string) error {
		return api.SaveBuffer()
	}
	register(api, "w", write)
	register(api, "q", func(args []string) error {
		if api.IsBufferModified() {
			return fmt.Errorf("unsaved changes (use :q! to discard)")
		}
		api.RequestQuit(false)
		return nil
	})
	register(api, "q!", func(args []string) error {
		api.RequestQuit(true)
		return nil
	})
	register(api, "wq", func(args []string) error {
		if err := write(args); err != nil {
			return err
		}
		api.RequestQuit(true)
		return nil
	})
	register(api, "goto", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: goto <offset>")
		}
		offset, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad offset %q", args[0])
		}
		api.MoveCursor(offset)
		return nil
	})
}

// RegisterDecorationCommands registers :tag, :untag, :normalize and
// :decorations.
func RegisterDecorationCommands(api plugin.EditorAPI) {
	register(api, "tag", func(args []string) error {
		typ, err := userType(args)
		if err != nil {
			return err
		}
		ranges := api.Ranges()
		if len(ranges) == 0 {
			return fmt.Errorf("nothing selected")
		}
		for _, sel := range ranges {
			if !sel.IsEmpty() {
				api.AddDecoration(types.NewDecoration(typ, sel.Start(), sel.End()))
			}
		}
		api.SetStatusMessage("Tagged %d selection(s) as %s", len(ranges), typ)
		return nil
	})

	register(api, "untag", func(args []string) error {
		typ, err := userType(args)
		if err != nil {
			return err
		}
		removed := 0
		for _, d := range api.Decorations() {
			if d.Type != typ || !touchesSelection(d, api.Ranges()) {
				continue
			}
			api.RemoveDecoration(d)
			removed++
		}
		api.SetStatusMessage("Removed %d %s decoration(s)", removed, typ)
		return nil
	})

	register(api, "normalize", func(args []string) error {
		before := len(api.Decorations())
		api.NormalizeDecorations()
		api.SetStatusMessage("Dropped %d empty decoration(s)", before-len(api.Decorations()))
		return nil
	})

	register(api, "decorations", func(args []string) error {
		counts := make(map[string]int)
		for _, d := range api.Decorations() {
			counts[d.Type]++
		}
		if len(counts) == 0 {
			api.SetStatusMessage("No decorations")
			return nil
		}
		names := make([]string, 0, len(counts))
		for typ := range counts {
			names = append(names, typ)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, typ := range names {
			parts[i] = fmt.Sprintf("%s=%d", typ, counts[typ])
		}
		api.SetStatusMessage("%s", strings.Join(parts, " "))
		return nil
	})
}

// userType validates a decoration type given on the command line.
func userType(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected one decoration type")
	}
	typ := args[0]
	if typ == types.TypeCursor || typ == types.TypeSelection {
		return "", fmt.Errorf("'%s' is reserved", typ)
	}
	return typ, nil
}

// touchesSelection reports whether d overlaps any selection. With no
// selections every decoration qualifies.
func touchesSelection(d types.Decoration, ranges []types.Decoration) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, sel := range ranges {
		if d.Intersects(sel.Range) || (sel.IsEmpty() && d.Contains(sel.Start())) {
			return true
		}
	}
	return false
}
