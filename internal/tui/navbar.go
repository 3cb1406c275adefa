package tui

import (
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/theme"
)

func renderNavbar(active View, th theme.Theme, pal theme.Palette, width int) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(pal.Muted)
	rightStyle := lipgloss.NewStyle().Foreground(pal.Muted)

	var tabs string
	for i, name := range viewNames {
		if i > 0 {
			tabs += inactiveStyle.Render(" │ ")
		}
		if View(i) == active {
			tabs += activeStyle.Render(name)
		} else {
			tabs += inactiveStyle.Render(name)
		}
	}

	left := " " + tabs
	right := rightStyle.Render("theme: " + string(th))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	padding := lipgloss.NewStyle().Width(gap)

	return left + padding.Render("") + right + " "
}
