package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/projects"
	"vitrine/internal/theme"
	"vitrine/internal/types"
)

// ProjectsView renders the fixed catalog with search, category filter,
// and sort controls. Items collapse again whenever the shaped list
// changes.
type ProjectsView struct {
	search      textinput.Model
	categoryIdx int
	sortIdx     int

	list     []types.Project
	cursor   int
	expanded map[int]bool // project ID -> open

	pal    theme.Palette
	width  int
	height int
}

func NewProjectsView() ProjectsView {
	ti := textinput.New()
	ti.Placeholder = "search projects"
	ti.CharLimit = 60
	ti.Width = 30
	v := ProjectsView{search: ti}
	v.reshape()
	return v
}

func (v *ProjectsView) SetPalette(pal theme.Palette) { v.pal = pal }

func (v *ProjectsView) SetSize(w, h int) {
	v.width = w
	v.height = h
}

func (v ProjectsView) Editing() bool { return v.search.Focused() }

// reshape recomputes the visible list and collapses every item.
func (v *ProjectsView) reshape() {
	v.list = projects.Shape(
		projects.Catalog,
		v.search.Value(),
		projects.Categories()[v.categoryIdx],
		projects.SortModes()[v.sortIdx],
	)
	v.expanded = make(map[int]bool)
	if v.cursor >= len(v.list) {
		v.cursor = len(v.list) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v ProjectsView) Update(msg tea.Msg) (ProjectsView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				v.search.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			v.reshape()
			return v, cmd
		}

		switch msg.String() {
		case "/":
			return v, v.search.Focus()
		case "c":
			v.categoryIdx = (v.categoryIdx + 1) % len(projects.Categories())
			v.reshape()
		case "s":
			v.sortIdx = (v.sortIdx + 1) % len(projects.SortModes())
			v.reshape()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.list)-1 {
				v.cursor++
			}
		case "enter", " ":
			if v.cursor < len(v.list) {
				id := v.list[v.cursor].ID
				v.expanded[id] = !v.expanded[id]
			}
		}
	}
	return v, nil
}

func (v ProjectsView) View() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(v.pal.Accent)
	text := lipgloss.NewStyle().Foreground(v.pal.Text)
	muted := lipgloss.NewStyle().Foreground(v.pal.Muted)

	controls := fmt.Sprintf(" %s   %s  %s",
		v.search.View(),
		muted.Render("[category: "+projects.Categories()[v.categoryIdx]+"]"),
		muted.Render("[sort: "+string(projects.SortModes()[v.sortIdx])+"]"),
	)

	var rows []string
	rows = append(rows, "", controls, "")

	if len(v.list) == 0 {
		rows = append(rows, " "+muted.Render("No projects match. Adjust the search or filter."))
	}

	for i, p := range v.list {
		marker := "▸"
		if v.expanded[p.ID] {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s  %s", marker, p.Title, muted.Render(strings.ToUpper(string(p.Category))+" · "+p.Date))
		if i == v.cursor {
			rows = append(rows, " "+accent.Render("› ")+text.Render(line))
		} else {
			rows = append(rows, "   "+text.Render(line))
		}
		if v.expanded[p.ID] {
			rows = append(rows, "     "+muted.Render(p.Description))
		}
	}

	rows = append(rows, "", " "+muted.Render("/ search · c category · s sort · enter expand"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
