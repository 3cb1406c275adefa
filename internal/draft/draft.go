// Package draft suggests a subject, body, and help caption for the
// contact form. With a stored credential it asks a chat model for a
// strict-JSON draft; without one, or whenever the live call fails, it
// falls back to a deterministic local template. Draft never returns an
// error: the caller always gets a usable draft.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"vitrine/internal/applog"
	"vitrine/internal/types"
)

// Context carries the current form state into the drafting step.
type Context struct {
	Name    string
	Email   string
	Subject string
	Message string
	Purpose string
	Tone    string
}

// Source reports which path produced the draft.
type Source int

const (
	// SourceTemplate means no credential was stored; the local template ran.
	SourceTemplate Source = iota
	// SourceAI means the live model produced the draft.
	SourceAI
	// SourceFallback means the live call failed and the template stood in.
	SourceFallback
)

// Status is the user-facing message for each source.
func (s Source) Status() string {
	switch s {
	case SourceAI:
		return "Draft ready (AI)."
	case SourceFallback:
		return "Live AI unavailable. Using local template."
	default:
		return "Draft ready (local template)."
	}
}

// Assistant drafts contact messages. A nil client means template-only.
type Assistant struct {
	client *openai.Client
	model  string
}

// NewAssistant builds an assistant. An empty apiKey disables the live
// path. baseURL overrides the API endpoint (used by tests); leave it
// empty for the public API.
func NewAssistant(apiKey, model, baseURL string) *Assistant {
	a := &Assistant{model: model}
	if apiKey == "" {
		return a
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	a.client = openai.NewClientWithConfig(cfg)
	return a
}

// Draft produces a suggested draft for the given form context. It never
// blocks the form with an error: any live failure degrades to the local
// template and is reported through the returned Source.
func (a *Assistant) Draft(ctx context.Context, dc Context) (types.Draft, Source) {
	if a.client == nil {
		return localTemplate(dc.Name, dc.Purpose, dc.Tone), SourceTemplate
	}

	d, err := a.complete(ctx, dc)
	if err != nil {
		applog.Error("draft.openai", err, "model", a.model)
		return localTemplate(dc.Name, dc.Purpose, dc.Tone), SourceFallback
	}
	applog.Info("draft.openai", "model", a.model)
	return d, SourceAI
}

func (a *Assistant) complete(ctx context.Context, dc Context) (types.Draft, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    buildMessages(dc),
		Temperature: 0.7,
	})
	if err != nil {
		return types.Draft{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return types.Draft{}, fmt.Errorf("chat completion: empty choices")
	}

	d, ok := parseDraft(resp.Choices[0].Message.Content)
	if !ok {
		return types.Draft{}, fmt.Errorf("malformed draft content")
	}
	return d, nil
}

const systemPrompt = `You are a helpful writing assistant. Return only valid JSON: {"subject": "...","body": "...","help": "..."} with short, clear, friendly text.`

func buildMessages(dc Context) []openai.ChatCompletionMessage {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	user := fmt.Sprintf(`Draft a subject, message body, and one-sentence help text for a website contact form.
Purpose: %s
Tone: %s
Name: %s
Email: %s
Existing subject: %s
Existing message: %s
Constraints: keep it brief, plain language, and safe for all audiences.`,
		dc.Purpose, dc.Tone,
		or(dc.Name, "Anonymous"), or(dc.Email, "unknown"),
		or(dc.Subject, "(none)"), or(dc.Message, "(none)"))

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}

// parseDraft decodes the model's textual content as JSON. If the first
// attempt fails it strips code-fence wrapping and tries once more. A
// draft missing both subject and body is rejected.
func parseDraft(content string) (types.Draft, bool) {
	content = strings.TrimSpace(content)

	var d types.Draft
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		stripped := strings.NewReplacer("```json", "", "```", "").Replace(content)
		if err := json.Unmarshal([]byte(strings.TrimSpace(stripped)), &d); err != nil {
			return types.Draft{}, false
		}
	}
	if d.Subject == "" && d.Body == "" {
		return types.Draft{}, false
	}
	return d, true
}
