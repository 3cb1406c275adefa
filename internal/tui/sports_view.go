package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/sports"
	"vitrine/internal/theme"
	"vitrine/internal/types"
)

type sportsLoadedMsg struct {
	results []types.SportSummary
}

type articleMsg struct {
	key  string
	text string
	err  error
}

// SportsView runs the summary batch and renders one card per topic.
// Failed topics show their bundled fallback; the filter narrows the
// already-loaded cards by title.
type SportsView struct {
	client  *sports.Client
	spin    spinner.Model
	filter  textinput.Model
	results []types.SportSummary
	cursor  int
	loading bool

	// Readable-article preview for the selected card.
	articleFor  string
	articleText string
	articleErr  error
	reading     bool

	pal    theme.Palette
	width  int
	height int
}

func NewSportsView(summaryURL string) SportsView {
	ti := textinput.New()
	ti.Placeholder = "filter by title"
	ti.CharLimit = 40
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SportsView{
		client:  sports.NewClient(summaryURL),
		spin:    sp,
		filter:  ti,
		loading: true, // the root model starts the first batch on Init
	}
}

func (v *SportsView) SetPalette(pal theme.Palette) { v.pal = pal }

func (v *SportsView) SetSize(w, h int) {
	v.width = w
	v.height = h
}

func (v SportsView) Editing() bool { return v.filter.Focused() }

// Load kicks off the whole batch. Also used for refresh and retry.
func (v *SportsView) Load() tea.Cmd {
	v.loading = true
	client := v.client
	return tea.Batch(
		v.spin.Tick,
		func() tea.Msg {
			return sportsLoadedMsg{results: client.LoadBatch(context.Background(), sports.Topics)}
		},
	)
}

func (v *SportsView) readSelected() tea.Cmd {
	visible := sports.FilterByTitle(v.results, v.filter.Value())
	if v.cursor >= len(visible) {
		return nil
	}
	card := visible[v.cursor]
	v.reading = true
	v.articleFor = card.Key
	return func() tea.Msg {
		_, text, err := sports.ReadArticle(card.URL)
		return articleMsg{key: card.Key, text: text, err: err}
	}
}

func (v SportsView) Update(msg tea.Msg) (SportsView, tea.Cmd) {
	switch msg := msg.(type) {
	case sportsLoadedMsg:
		v.loading = false
		v.results = msg.results
		v.cursor = 0
		return v, nil

	case articleMsg:
		if msg.key != v.articleFor {
			return v, nil // stale response for a card we moved away from
		}
		v.reading = false
		v.articleText = msg.text
		v.articleErr = msg.err
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.filter.Focused() {
			switch msg.String() {
			case "enter", "esc":
				v.filter.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.filter, cmd = v.filter.Update(msg)
			v.cursor = 0
			return v, cmd
		}

		switch msg.String() {
		case "r":
			return v, v.Load()
		case "/":
			return v, v.filter.Focus()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.clearArticle()
			}
		case "down", "j":
			if v.cursor < len(sports.FilterByTitle(v.results, v.filter.Value()))-1 {
				v.cursor++
				v.clearArticle()
			}
		case "enter":
			return v, v.readSelected()
		}
	}
	return v, nil
}

func (v *SportsView) clearArticle() {
	v.articleFor = ""
	v.articleText = ""
	v.articleErr = nil
	v.reading = false
}

func (v SportsView) View() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(v.pal.Accent)
	text := lipgloss.NewStyle().Foreground(v.pal.Text)
	muted := lipgloss.NewStyle().Foreground(v.pal.Muted)
	danger := lipgloss.NewStyle().Foreground(v.pal.Danger)

	if v.loading {
		return "\n " + v.spin.View() + text.Render(" Loading sports…")
	}

	var rows []string
	live, fallback := 0, 0
	for _, r := range v.results {
		if r.Fallback {
			fallback++
		} else {
			live++
		}
	}
	status := fmt.Sprintf("Loaded. %d live · %d fallback", live, fallback)
	if fallback > 0 {
		status += " · press r to retry"
	}
	rows = append(rows, "", fmt.Sprintf(" %s   %s", v.filter.View(), muted.Render(status)), "")

	visible := sports.FilterByTitle(v.results, v.filter.Value())
	if len(visible) == 0 {
		rows = append(rows, " "+muted.Render("No sports match your filter."))
	}

	for i, card := range visible {
		title := card.Title
		if card.Fallback {
			title += " " + muted.Render("(offline)")
		}
		if i == v.cursor {
			rows = append(rows, " "+accent.Render("› "+title))
		} else {
			rows = append(rows, "   "+text.Render(title))
		}
		rows = append(rows, "     "+muted.Render(card.Summary))
		if card.URL != "#" {
			rows = append(rows, "     "+muted.Render(card.URL))
		}

		if i == v.cursor {
			switch {
			case v.reading:
				rows = append(rows, "     "+muted.Render("Reading article…"))
			case v.articleErr != nil:
				rows = append(rows, "     "+danger.Render("Could not load the article."))
			case v.articleText != "":
				preview := v.articleText
				if len(preview) > 400 {
					preview = preview[:400] + "…"
				}
				rows = append(rows, "     "+text.Render(preview))
			}
		}
		rows = append(rows, "")
	}

	rows = append(rows, " "+muted.Render("/ filter · r refresh · enter read article"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
