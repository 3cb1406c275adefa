// Package sports loads short sport descriptions from the Wikipedia REST
// summary API. Topics are fetched concurrently; a failed topic is
// replaced by a bundled fallback record so one bad fetch never spoils
// the batch.
package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"vitrine/internal/applog"
	"vitrine/internal/types"
)

// Topics is the fixed set of sports shown on the panel.
var Topics = []types.SportTopic{
	{Key: "soccer", Title: "Soccer", Ref: "Association_football"},
	{Key: "basketball", Title: "Basketball", Ref: "Basketball"},
	{Key: "tennis", Title: "Tennis", Ref: "Tennis"},
	{Key: "swimming", Title: "Swimming", Ref: "Swimming_(sport)"},
	{Key: "formulaone", Title: "Formula One", Ref: "Formula_One"},
}

const userAgent = "vitrine/1.0 (terminal portfolio; +https://en.wikipedia.org/api/rest_v1/)"

// Client talks to the summary endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the given summary base URL,
// e.g. "https://en.wikipedia.org/api/rest_v1/page/summary".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// summaryResponse mirrors the fields we use from the REST summary payload.
type summaryResponse struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// FetchSummary requests the summary for one topic reference. The display
// title falls back to the reference with underscores replaced by spaces,
// and the article URL to the constructed Wikipedia page URL.
func (c *Client) FetchSummary(ctx context.Context, ref string) (types.SportSummary, error) {
	endpoint := c.BaseURL + "/" + url.PathEscape(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.SportSummary{}, fmt.Errorf("fetch %s: %w", ref, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return types.SportSummary{}, fmt.Errorf("fetch %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.SportSummary{}, fmt.Errorf("fetch %s: HTTP %d", ref, resp.StatusCode)
	}

	var data summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return types.SportSummary{}, fmt.Errorf("decode summary for %s: %w", ref, err)
	}

	title := data.Title
	if title == "" {
		title = strings.ReplaceAll(ref, "_", " ")
	}
	pageURL := data.ContentURLs.Desktop.Page
	if pageURL == "" {
		pageURL = "https://en.wikipedia.org/wiki/" + ref
	}

	return types.SportSummary{
		Title:   title,
		Summary: Simplify(data.Extract),
		Image:   data.Thumbnail.Source,
		URL:     pageURL,
	}, nil
}

// LoadBatch fetches every topic concurrently and returns one result per
// topic, in input order. A topic whose fetch fails gets its bundled
// fallback record (or a generic placeholder); the batch itself never fails.
func (c *Client) LoadBatch(ctx context.Context, topics []types.SportTopic) []types.SportSummary {
	results := make([]types.SportSummary, len(topics))

	var wg sync.WaitGroup
	for i, topic := range topics {
		wg.Add(1)
		go func(i int, topic types.SportTopic) {
			defer wg.Done()
			sum, err := c.FetchSummary(ctx, topic.Ref)
			if err != nil {
				applog.Error("sports.fetch", err, "key", topic.Key)
				results[i] = fallbackFor(topic)
				return
			}
			sum.Key = topic.Key
			results[i] = sum
		}(i, topic)
	}
	wg.Wait()

	live := 0
	for _, r := range results {
		if !r.Fallback {
			live++
		}
	}
	applog.Info("sports.loaded", "live", live, "fallback", len(results)-live)
	return results
}

// FilterByTitle returns the already-loaded results whose title contains
// the query, case-insensitively. An empty query keeps everything.
func FilterByTitle(results []types.SportSummary, query string) []types.SportSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}
	var out []types.SportSummary
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Title), q) {
			out = append(out, r)
		}
	}
	return out
}
