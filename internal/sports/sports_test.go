package sports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vitrine/internal/types"
)

// summaryServer serves canned summary payloads by topic reference and
// returns 404 for anything in fail.
func summaryServer(t *testing.T, fail map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, "/")
		if fail[ref] {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		resp := map[string]any{
			"title":   strings.ReplaceAll(ref, "_", " "),
			"extract": "A sport described by the test server.",
			"thumbnail": map[string]string{
				"source": "https://img.example/" + ref + ".jpg",
			},
			"content_urls": map[string]any{
				"desktop": map[string]string{
					"page": "https://en.wikipedia.org/wiki/" + ref,
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestFetchSummary(t *testing.T) {
	srv := summaryServer(t, nil)
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.FetchSummary(context.Background(), "Tennis")
	if err != nil {
		t.Fatalf("FetchSummary: %v", err)
	}
	if got.Title != "Tennis" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Summary != "A sport described by the test server." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.Image != "https://img.example/Tennis.jpg" {
		t.Errorf("Image = %q", got.Image)
	}
	if got.URL != "https://en.wikipedia.org/wiki/Tennis" {
		t.Errorf("URL = %q", got.URL)
	}
}

func TestFetchSummaryFallbackFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Minimal payload: no title, no thumbnail, no content_urls.
		w.Write([]byte(`{"extract": "bare extract"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.FetchSummary(context.Background(), "Swimming_(sport)")
	if err != nil {
		t.Fatalf("FetchSummary: %v", err)
	}
	if got.Title != "Swimming (sport)" {
		t.Errorf("Title = %q, want underscores replaced", got.Title)
	}
	if got.URL != "https://en.wikipedia.org/wiki/Swimming_(sport)" {
		t.Errorf("URL = %q, want constructed page URL", got.URL)
	}
	if got.Image != "" {
		t.Errorf("Image = %q, want empty", got.Image)
	}
}

func TestFetchSummaryNonSuccess(t *testing.T) {
	srv := summaryServer(t, map[string]bool{"Tennis": true})
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.FetchSummary(context.Background(), "Tennis"); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}

func TestLoadBatchSubstitutesFallback(t *testing.T) {
	srv := summaryServer(t, map[string]bool{"Basketball": true})
	defer srv.Close()

	c := NewClient(srv.URL)
	results := c.LoadBatch(context.Background(), Topics)

	if len(results) != len(Topics) {
		t.Fatalf("got %d results, want %d", len(results), len(Topics))
	}
	for i, topic := range Topics {
		if results[i].Key != topic.Key {
			t.Errorf("results[%d].Key = %q, want %q (input order)", i, results[i].Key, topic.Key)
		}
	}

	var basketball types.SportSummary
	for _, r := range results {
		if r.Key == "basketball" {
			basketball = r
		}
	}
	if !basketball.Fallback {
		t.Error("failed topic should be marked as fallback")
	}
	if basketball.Summary != fallbacks["Basketball"].Summary {
		t.Errorf("failed topic summary = %q, want bundled fallback", basketball.Summary)
	}
}

func TestLoadBatchAllFailingStillReturnsAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	srv.Close() // closed server: every request is a network error

	c := NewClient(srv.URL)
	results := c.LoadBatch(context.Background(), Topics)

	if len(results) != len(Topics) {
		t.Fatalf("got %d results, want %d", len(results), len(Topics))
	}
	for i, r := range results {
		if !r.Fallback {
			t.Errorf("results[%d] should be a fallback", i)
		}
		if r.Summary == "" {
			t.Errorf("results[%d] has empty summary", i)
		}
	}
}

func TestFallbackForUnknownRef(t *testing.T) {
	topic := types.SportTopic{Key: "curling", Title: "Curling", Ref: "Curling"}
	got := fallbackFor(topic)
	if got.Title != "Curling" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Summary != "A popular sport enjoyed worldwide." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.URL != "#" {
		t.Errorf("URL = %q, want placeholder", got.URL)
	}
}

func TestFallbackTableCoversCatalog(t *testing.T) {
	for _, topic := range Topics {
		if _, ok := fallbacks[topic.Ref]; !ok {
			t.Errorf("no bundled fallback for %q", topic.Ref)
		}
	}
}

func TestFilterByTitle(t *testing.T) {
	results := []types.SportSummary{
		{Key: "soccer", Title: "Soccer"},
		{Key: "basketball", Title: "Basketball"},
		{Key: "formulaone", Title: "Formula One"},
	}

	got := FilterByTitle(results, "BALL")
	if len(got) != 1 || got[0].Key != "basketball" {
		t.Errorf("FilterByTitle(BALL) = %v", got)
	}

	if got := FilterByTitle(results, "  "); len(got) != 3 {
		t.Errorf("blank query should keep all results, got %d", len(got))
	}

	if got := FilterByTitle(results, "chess"); len(got) != 0 {
		t.Errorf("no-match query should return empty, got %d", len(got))
	}
}
