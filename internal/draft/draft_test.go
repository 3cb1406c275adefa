package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeOpenAI returns a server that answers every chat completion with
// the given message content.
func fakeOpenAI(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "nope", status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func assistantFor(srv *httptest.Server) *Assistant {
	return NewAssistant("test-key", "gpt-4o-mini", srv.URL+"/v1")
}

func TestDraftNoCredentialUsesTemplate(t *testing.T) {
	a := NewAssistant("", "gpt-4o-mini", "")

	for _, purpose := range append(Purposes, "unknown") {
		for _, tone := range append(Tones, "unknown") {
			d, src := a.Draft(context.Background(), Context{Name: "Ada", Purpose: purpose, Tone: tone})
			if src != SourceTemplate {
				t.Fatalf("purpose=%s tone=%s: source = %v, want template", purpose, tone, src)
			}
			if d.Subject == "" || d.Body == "" {
				t.Errorf("purpose=%s tone=%s: empty subject or body: %+v", purpose, tone, d)
			}
			if d.Help == "" {
				t.Errorf("purpose=%s tone=%s: empty help", purpose, tone)
			}
		}
	}
}

func TestDraftAISuccess(t *testing.T) {
	srv := fakeOpenAI(t, `{"subject":"Hi","body":"A drafted body.","help":"Edit before sending."}`, http.StatusOK)
	defer srv.Close()

	a := assistantFor(srv)
	d, src := a.Draft(context.Background(), Context{Purpose: "inquiry", Tone: "friendly"})
	if src != SourceAI {
		t.Fatalf("source = %v, want AI", src)
	}
	if d.Subject != "Hi" || d.Body != "A drafted body." || d.Help != "Edit before sending." {
		t.Errorf("unexpected draft: %+v", d)
	}
}

func TestDraftAIFencedJSON(t *testing.T) {
	content := "```json\n{\"subject\":\"Hi\",\"body\":\"Fenced body.\",\"help\":\"h\"}\n```"
	srv := fakeOpenAI(t, content, http.StatusOK)
	defer srv.Close()

	a := assistantFor(srv)
	d, src := a.Draft(context.Background(), Context{Purpose: "thanks", Tone: "polite"})
	if src != SourceAI {
		t.Fatalf("source = %v, want AI", src)
	}
	if d.Body != "Fenced body." {
		t.Errorf("Body = %q", d.Body)
	}
}

func TestDraftAIMalformedFallsBack(t *testing.T) {
	srv := fakeOpenAI(t, "Sure! Here's a draft for you.", http.StatusOK)
	defer srv.Close()

	a := assistantFor(srv)
	d, src := a.Draft(context.Background(), Context{Name: "Ada", Purpose: "support", Tone: "concise"})
	if src != SourceFallback {
		t.Fatalf("source = %v, want fallback", src)
	}
	if d.Subject != "Need a bit of help" {
		t.Errorf("Subject = %q, want template subject", d.Subject)
	}
	if !strings.Contains(src.Status(), "unavailable") {
		t.Errorf("Status = %q, want unavailable message", src.Status())
	}
}

func TestDraftAIMissingSubjectAndBodyFallsBack(t *testing.T) {
	srv := fakeOpenAI(t, `{"help":"only help"}`, http.StatusOK)
	defer srv.Close()

	a := assistantFor(srv)
	_, src := a.Draft(context.Background(), Context{Purpose: "greeting", Tone: "friendly"})
	if src != SourceFallback {
		t.Fatalf("source = %v, want fallback", src)
	}
}

func TestDraftAIHTTPErrorFallsBack(t *testing.T) {
	srv := fakeOpenAI(t, "", http.StatusInternalServerError)
	defer srv.Close()

	a := assistantFor(srv)
	d, src := a.Draft(context.Background(), Context{Purpose: "inquiry", Tone: "professional"})
	if src != SourceFallback {
		t.Fatalf("source = %v, want fallback", src)
	}
	if d.Subject == "" || d.Body == "" {
		t.Errorf("fallback draft incomplete: %+v", d)
	}
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
		subject string
	}{
		{"plain", `{"subject":"s","body":"b"}`, true, "s"},
		{"fenced", "```json\n{\"subject\":\"s\",\"body\":\"b\"}\n```", true, "s"},
		{"bare fence", "```\n{\"subject\":\"s\",\"body\":\"b\"}\n```", true, "s"},
		{"prose", "here you go", false, ""},
		{"empty object", `{}`, false, ""},
		{"body only", `{"body":"b"}`, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := parseDraft(tt.content)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if d.Subject != tt.subject {
				t.Errorf("Subject = %q, want %q", d.Subject, tt.subject)
			}
		})
	}
}

func TestLocalTemplateTables(t *testing.T) {
	tests := []struct {
		purpose     string
		wantSubject string
	}{
		{"greeting", "Hello from Ada"},
		{"inquiry", "Question about your work"},
		{"collaboration", "Collaboration idea"},
		{"support", "Need a bit of help"},
		{"thanks", "Thank you!"},
		{"mystery", "Hello"},
	}
	for _, tt := range tests {
		d := localTemplate("Ada", tt.purpose, "friendly")
		if d.Subject != tt.wantSubject {
			t.Errorf("purpose %s: Subject = %q, want %q", tt.purpose, d.Subject, tt.wantSubject)
		}
		if !strings.HasSuffix(d.Body, "Looking forward to hearing from you.") {
			t.Errorf("purpose %s: Body = %q missing closing line", tt.purpose, d.Body)
		}
	}
}

func TestLocalTemplateGreetingUsesName(t *testing.T) {
	d := localTemplate("Ada", "greeting", "friendly")
	if !strings.HasPrefix(d.Body, "Hi, Ada!") {
		t.Errorf("Body = %q, want Hi, Ada! opener", d.Body)
	}

	anon := localTemplate("", "greeting", "friendly")
	if anon.Subject != "Hello from a visitor" {
		t.Errorf("Subject = %q", anon.Subject)
	}
	if !strings.HasPrefix(anon.Body, "Hi, there!") {
		t.Errorf("Body = %q, want Hi, there! opener", anon.Body)
	}
}

func TestLocalTemplateToneStyles(t *testing.T) {
	for _, tone := range Tones {
		d := localTemplate("Ada", "inquiry", tone)
		want := fmt.Sprintf("Draft created in a %s style. Edit any part before sending.", toneStyles[tone])
		if d.Help != want {
			t.Errorf("tone %s: Help = %q, want %q", tone, d.Help, want)
		}
	}

	d := localTemplate("Ada", "inquiry", "gruff")
	if !strings.Contains(d.Help, defaultStyle) {
		t.Errorf("unknown tone Help = %q, want default style", d.Help)
	}
}
