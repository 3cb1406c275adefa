// Package tui is the terminal front end: a navbar of four fixed tabs
// (About, Projects, Sports, Contact) over per-tab view models. The
// active tab is persisted so the next launch resumes where the user
// left off.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/applog"
	"vitrine/internal/config"
	"vitrine/internal/prefs"
	"vitrine/internal/theme"
)

// View identifies one of the fixed tabs.
type View int

const (
	ViewAbout View = iota
	ViewProjects
	ViewSports
	ViewContact
)

var viewNames = []string{"About", "Projects", "Sports", "Contact"}

// viewKeys are the persisted tab identifiers.
var viewKeys = []string{"about", "projects", "sports", "contact"}

func viewFromKey(key string) View {
	for i, k := range viewKeys {
		if k == key {
			return View(i)
		}
	}
	return ViewAbout
}

// Model is the root bubbletea model.
type Model struct {
	store *prefs.Store
	cfg   config.Config

	theme  theme.Theme
	active View

	about    AboutView
	projects ProjectsView
	sports   SportsView
	contact  ContactView

	width  int
	height int
}

// NewModel wires the views to the preference store and config. The
// initial theme and active tab come from stored preferences.
func NewModel(store *prefs.Store, cfg config.Config) Model {
	th := theme.Initial(store)
	m := Model{
		store:    store,
		cfg:      cfg,
		theme:    th,
		active:   viewFromKey(store.GetString(prefs.KeyLastTab, viewKeys[ViewAbout])),
		about:    NewAboutView(store),
		projects: NewProjectsView(),
		sports:   NewSportsView(cfg.SummaryURL),
		contact:  NewContactView(store, cfg),
	}
	m.applyPalette()
	return m
}

func (m *Model) applyPalette() {
	pal := theme.Colors(m.theme)
	m.about.SetPalette(pal)
	m.projects.SetPalette(pal)
	m.sports.SetPalette(pal)
	m.contact.SetPalette(pal)
}

func (m Model) Init() tea.Cmd {
	applog.Info("tui.start", "tab", viewKeys[m.active], "theme", string(m.theme))
	return m.sports.Load()
}

// setActive switches tabs and persists the choice.
func (m *Model) setActive(v View) {
	m.active = v
	m.store.Set(prefs.KeyLastTab, viewKeys[v])
}

// editing reports whether the active view currently owns the keyboard
// (a focused text input), in which case global single-letter keys are
// passed through.
func (m Model) editing() bool {
	switch m.active {
	case ViewAbout:
		return m.about.Editing()
	case ViewProjects:
		return m.projects.Editing()
	case ViewSports:
		return m.sports.Editing()
	case ViewContact:
		return m.contact.Editing()
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 3 // navbar + bottom bar
		m.about.SetSize(m.width, contentHeight)
		m.projects.SetSize(m.width, contentHeight)
		m.sports.SetSize(m.width, contentHeight)
		m.contact.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if !m.editing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "t":
				m.theme = theme.Toggle(m.store, m.theme)
				m.applyPalette()
				return m, nil
			case "1", "2", "3", "4":
				m.setActive(View(msg.String()[0] - '1'))
				return m, nil
			case "[":
				m.setActive((m.active + View(len(viewNames)) - 1) % View(len(viewNames)))
				return m, nil
			case "]":
				m.setActive((m.active + 1) % View(len(viewNames)))
				return m, nil
			}
		}
	}

	// Everything else belongs to the views. Non-key messages (fetch
	// results, ticks) are fanned out so background loads finish even
	// while another tab is active.
	var cmds []tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey {
		cmds = append(cmds, m.updateActive(msg))
	} else {
		var cmd tea.Cmd
		m.about, cmd = m.about.Update(msg)
		cmds = append(cmds, cmd)
		m.projects, cmd = m.projects.Update(msg)
		cmds = append(cmds, cmd)
		m.sports, cmd = m.sports.Update(msg)
		cmds = append(cmds, cmd)
		m.contact, cmd = m.contact.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.active {
	case ViewAbout:
		m.about, cmd = m.about.Update(msg)
	case ViewProjects:
		m.projects, cmd = m.projects.Update(msg)
	case ViewSports:
		m.sports, cmd = m.sports.Update(msg)
	case ViewContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return cmd
}

func (m Model) View() string {
	pal := theme.Colors(m.theme)

	var content string
	switch m.active {
	case ViewAbout:
		content = m.about.View()
	case ViewProjects:
		content = m.projects.View()
	case ViewSports:
		content = m.sports.View()
	case ViewContact:
		content = m.contact.View()
	}

	navbar := renderNavbar(m.active, m.theme, pal, m.width)

	help := "1-4/[ ] switch tab · t theme · q quit"
	if m.editing() {
		help = "esc done editing · ctrl+c quit"
	}
	bottomBar := lipgloss.NewStyle().Foreground(pal.Muted).Padding(0, 1).Render(help)

	bodyHeight := m.height - 3
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := lipgloss.NewStyle().Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, navbar, body, bottomBar)
}
