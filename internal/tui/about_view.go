package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/identity"
	"vitrine/internal/prefs"
	"vitrine/internal/theme"
)

// AboutView shows the time-of-day greeting and lets the visitor store,
// change, or clear their display name.
type AboutView struct {
	store     *prefs.Store
	nameInput textinput.Model
	status    string
	pal       theme.Palette
	width     int
	height    int
}

func NewAboutView(store *prefs.Store) AboutView {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 60
	ti.Width = 30
	ti.SetValue(identity.Name(store))
	return AboutView{store: store, nameInput: ti}
}

func (v *AboutView) SetPalette(pal theme.Palette) { v.pal = pal }

func (v *AboutView) SetSize(w, h int) {
	v.width = w
	v.height = h
}

func (v AboutView) Editing() bool { return v.nameInput.Focused() }

func (v AboutView) Update(msg tea.Msg) (AboutView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.nameInput.Focused() {
			switch msg.String() {
			case "enter":
				if err := identity.SetName(v.store, v.nameInput.Value()); err != nil {
					v.status = "Could not save name."
				} else {
					v.status = "Name saved."
				}
				v.nameInput.SetValue(identity.Name(v.store))
				v.nameInput.Blur()
				return v, nil
			case "esc":
				v.nameInput.SetValue(identity.Name(v.store))
				v.nameInput.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.nameInput, cmd = v.nameInput.Update(msg)
			return v, cmd
		}

		switch msg.String() {
		case "e", "enter":
			v.status = ""
			return v, v.nameInput.Focus()
		case "x":
			if err := identity.ClearName(v.store); err != nil {
				v.status = "Could not clear name."
			} else {
				v.status = "Name cleared."
			}
			v.nameInput.SetValue("")
			return v, nil
		}
	}
	return v, nil
}

func (v AboutView) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(v.pal.Accent)
	textStyle := lipgloss.NewStyle().Foreground(v.pal.Text)
	mutedStyle := lipgloss.NewStyle().Foreground(v.pal.Muted)

	greeting := titleStyle.Render(identity.Greeting(time.Now(), identity.Name(v.store)))

	intro := textStyle.Render("Welcome to the portfolio console. Browse projects,\nread up on a few sports, or leave a message.")

	form := mutedStyle.Render("Name: ") + v.nameInput.View()

	lines := []string{"", " " + greeting, "", " " + intro, "", " " + form}
	if v.status != "" {
		lines = append(lines, "", " "+mutedStyle.Render(v.status))
	}
	lines = append(lines, "", " "+mutedStyle.Render("e edit name · x clear name"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
