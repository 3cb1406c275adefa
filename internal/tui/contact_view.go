package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/config"
	"vitrine/internal/contact"
	"vitrine/internal/draft"
	"vitrine/internal/prefs"
	"vitrine/internal/theme"
	"vitrine/internal/types"
)

type draftMsg struct {
	draft  types.Draft
	source draft.Source
}

type submitDoneMsg struct {
	err error
}

type keyStatusClearMsg struct{}

// Indices into the contact form's focus order.
const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldAIKey
	fieldCount
)

// ContactView is the validated contact form plus the AI draft helper.
// Submission is simulated; drafting never blocks the form.
type ContactView struct {
	store *prefs.Store
	cfg   config.Config

	name    textinput.Model
	email   textinput.Model
	subject textinput.Model
	message textarea.Model
	aiKey   textinput.Model
	focus   int // index into the focus order; -1 when browsing

	purposeIdx int
	toneIdx    int

	errors     contact.FieldErrors
	formStatus string
	formDanger bool
	aiStatus   string
	helpText   string
	sending    bool
	drafting   bool

	pal    theme.Palette
	width  int
	height int
}

func NewContactView(store *prefs.Store, cfg config.Config) ContactView {
	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = width
		ti.CharLimit = 120
		return ti
	}

	msg := textarea.New()
	msg.Placeholder = "your message"
	msg.SetWidth(48)
	msg.SetHeight(4)
	msg.CharLimit = 2000

	key := mk("sk-… (stored locally)", 36)
	key.EchoMode = textinput.EchoPassword
	key.SetValue(store.GetString(prefs.KeyAPIKey, ""))

	return ContactView{
		store:   store,
		cfg:     cfg,
		name:    mk("your name", 36),
		email:   mk("you@example.com", 36),
		subject: mk("subject", 36),
		message: msg,
		aiKey:   key,
		focus:   -1,
		errors:  contact.FieldErrors{},
	}
}

func (v *ContactView) SetPalette(pal theme.Palette) { v.pal = pal }

func (v *ContactView) SetSize(w, h int) {
	v.width = w
	v.height = h
}

func (v ContactView) Editing() bool { return v.focus >= 0 }

func (v *ContactView) form() contact.Form {
	return contact.Form{
		Name:    v.name.Value(),
		Email:   v.email.Value(),
		Subject: v.subject.Value(),
		Message: v.message.Value(),
	}
}

func (v *ContactView) setFocus(i int) tea.Cmd {
	v.name.Blur()
	v.email.Blur()
	v.subject.Blur()
	v.message.Blur()
	v.aiKey.Blur()
	v.focus = i
	switch i {
	case fieldName:
		return v.name.Focus()
	case fieldEmail:
		return v.email.Focus()
	case fieldSubject:
		return v.subject.Focus()
	case fieldMessage:
		return v.message.Focus()
	case fieldAIKey:
		return v.aiKey.Focus()
	}
	return nil
}

// requestDraft builds the assistant from the stored credential (the
// OPENAI_API_KEY environment variable wins when set) and asks for a
// draft in the background.
func (v *ContactView) requestDraft() tea.Cmd {
	if v.drafting {
		return nil
	}
	v.drafting = true
	v.aiStatus = "Drafting…"

	key := v.cfg.APIKey
	if key == "" {
		key = v.store.GetString(prefs.KeyAPIKey, "")
	}
	assistant := draft.NewAssistant(key, v.cfg.Model, "")
	dc := draft.Context{
		Name:    v.name.Value(),
		Email:   v.email.Value(),
		Subject: v.subject.Value(),
		Message: v.message.Value(),
		Purpose: draft.Purposes[v.purposeIdx],
		Tone:    draft.Tones[v.toneIdx],
	}
	return func() tea.Msg {
		d, src := assistant.Draft(context.Background(), dc)
		return draftMsg{draft: d, source: src}
	}
}

func (v *ContactView) submit() tea.Cmd {
	if v.sending {
		return nil
	}
	form := v.form()
	v.errors = contact.Validate(form)
	if !v.errors.Valid() {
		v.formStatus = "Please fix the errors above."
		v.formDanger = true
		return nil
	}

	v.sending = true
	v.formStatus = "Sending…"
	v.formDanger = false
	return func() tea.Msg {
		return submitDoneMsg{err: contact.Submitter{}.Submit(context.Background(), form)}
	}
}

func (v *ContactView) saveAIKey() tea.Cmd {
	key := v.aiKey.Value()
	if key == "" {
		v.store.Delete(prefs.KeyAPIKey)
		v.aiStatus = "API key cleared."
	} else {
		v.store.Set(prefs.KeyAPIKey, key)
		v.aiStatus = "API key saved locally."
	}
	return clearKeyStatusLater()
}

// keyStatusDelay is how long the key saved/cleared notice stays visible.
const keyStatusDelay = 1500 * time.Millisecond

func clearKeyStatusLater() tea.Cmd {
	return tea.Tick(keyStatusDelay, func(time.Time) tea.Msg {
		return keyStatusClearMsg{}
	})
}

func (v ContactView) Update(msg tea.Msg) (ContactView, tea.Cmd) {
	switch msg := msg.(type) {
	case draftMsg:
		v.drafting = false
		// Only fields present in the draft are filled; nothing is cleared.
		if msg.draft.Subject != "" {
			v.subject.SetValue(msg.draft.Subject)
		}
		if msg.draft.Body != "" {
			v.message.SetValue(msg.draft.Body)
		}
		if msg.draft.Help != "" {
			v.helpText = msg.draft.Help
		}
		v.aiStatus = msg.source.Status()
		return v, nil

	case submitDoneMsg:
		v.sending = false
		if msg.err != nil {
			v.formStatus = "Something went wrong. Please try again."
			v.formDanger = true
			return v, nil
		}
		v.formStatus = "Message sent successfully!"
		v.formDanger = false
		v.name.SetValue("")
		v.email.SetValue("")
		v.subject.SetValue("")
		v.message.SetValue("")
		v.errors = contact.FieldErrors{}
		return v, nil

	case keyStatusClearMsg:
		v.aiStatus = ""
		return v, nil

	case tea.KeyMsg:
		if v.focus >= 0 {
			switch msg.String() {
			case "esc":
				v.focus = -1
				return v, v.setFocus(-1)
			case "tab":
				return v, v.setFocus((v.focus + 1) % fieldCount)
			case "shift+tab":
				return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
			case "ctrl+d":
				return v, v.requestDraft()
			case "ctrl+s":
				return v, v.submit()
			case "enter":
				if v.focus == fieldAIKey {
					return v, v.saveAIKey()
				}
				if v.focus != fieldMessage {
					return v, v.setFocus((v.focus + 1) % fieldCount)
				}
			}
			return v, v.updateFocused(msg)
		}

		switch msg.String() {
		case "e", "enter":
			return v, v.setFocus(fieldName)
		case "p":
			v.purposeIdx = (v.purposeIdx + 1) % len(draft.Purposes)
		case "o":
			v.toneIdx = (v.toneIdx + 1) % len(draft.Tones)
		case "d":
			return v, v.requestDraft()
		case "s":
			return v, v.submit()
		}
	}
	return v, nil
}

func (v *ContactView) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch v.focus {
	case fieldName:
		v.name, cmd = v.name.Update(msg)
	case fieldEmail:
		v.email, cmd = v.email.Update(msg)
	case fieldSubject:
		v.subject, cmd = v.subject.Update(msg)
	case fieldMessage:
		v.message, cmd = v.message.Update(msg)
	case fieldAIKey:
		v.aiKey, cmd = v.aiKey.Update(msg)
	}
	return cmd
}

func (v ContactView) View() string {
	muted := lipgloss.NewStyle().Foreground(v.pal.Muted)
	danger := lipgloss.NewStyle().Foreground(v.pal.Danger)
	success := lipgloss.NewStyle().Foreground(v.pal.Success)

	field := func(label string, input string, errKey string) []string {
		rows := []string{" " + muted.Render(label) + input}
		if msg, ok := v.errors[errKey]; ok {
			rows = append(rows, "          "+danger.Render(msg))
		}
		return rows
	}

	var rows []string
	rows = append(rows, "")
	rows = append(rows, field("Name:    ", v.name.View(), contact.FieldName)...)
	rows = append(rows, field("Email:   ", v.email.View(), contact.FieldEmail)...)
	rows = append(rows, field("Subject: ", v.subject.View(), "")...)
	rows = append(rows, " "+muted.Render("Message: "))
	for _, r := range strings.Split(v.message.View(), "\n") {
		rows = append(rows, "          "+r)
	}
	if msg, ok := v.errors[contact.FieldMessage]; ok {
		rows = append(rows, "          "+danger.Render(msg))
	}

	rows = append(rows, "",
		" "+muted.Render("Purpose: ["+draft.Purposes[v.purposeIdx]+"]  Tone: ["+draft.Tones[v.toneIdx]+"]"))

	if v.helpText != "" {
		rows = append(rows, " "+muted.Render(v.helpText))
	}

	rows = append(rows, "", " "+muted.Render("AI key:  ")+v.aiKey.View())
	if v.aiStatus != "" {
		rows = append(rows, " "+muted.Render(v.aiStatus))
	}

	if v.formStatus != "" {
		style := success
		if v.formDanger {
			style = danger
		}
		rows = append(rows, "", " "+style.Render(v.formStatus))
	}

	rows = append(rows, "", " "+muted.Render("e edit · tab next field · p purpose · o tone · d/ctrl+d draft · s/ctrl+s send"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
