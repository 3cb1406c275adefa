// Package theme resolves and persists the two-value color theme and
// exposes the matching lipgloss palette.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/prefs"
)

// Theme is one of exactly two values.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Palette groups the colors the views render with.
type Palette struct {
	Accent  lipgloss.Color // highlights, active tab
	Text    lipgloss.Color
	Muted   lipgloss.Color // secondary text, inactive chrome
	Border  lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
}

var palettes = map[Theme]Palette{
	Dark: {
		Accent:  lipgloss.Color("62"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("240"),
		Border:  lipgloss.Color("240"),
		Success: lipgloss.Color("42"),
		Danger:  lipgloss.Color("203"),
	},
	Light: {
		Accent:  lipgloss.Color("27"),
		Text:    lipgloss.Color("235"),
		Muted:   lipgloss.Color("245"),
		Border:  lipgloss.Color("250"),
		Success: lipgloss.Color("28"),
		Danger:  lipgloss.Color("160"),
	},
}

// Colors returns the palette for a theme. Unknown values get the dark palette.
func Colors(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Dark]
}

// terminalHasLightBackground is swappable in tests.
var terminalHasLightBackground = func() bool {
	return !lipgloss.HasDarkBackground()
}

// Initial resolves the starting theme: the stored preference wins, then
// the terminal background probe, then dark.
func Initial(store *prefs.Store) Theme {
	switch Theme(store.GetString(prefs.KeyTheme, "")) {
	case Dark:
		return Dark
	case Light:
		return Light
	}
	if terminalHasLightBackground() {
		return Light
	}
	return Dark
}

// Toggle flips between the two themes and persists the result.
func Toggle(store *prefs.Store, current Theme) Theme {
	next := Dark
	if current == Dark {
		next = Light
	}
	store.Set(prefs.KeyTheme, string(next))
	return next
}
