package sports

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ReadArticle fetches a sport's canonical article page and extracts
// readable text for the detail preview. Placeholder URLs (the "#" used
// by generic fallbacks) and non-HTTP schemes are rejected up front.
func ReadArticle(pageURL string) (title, text string, err error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return "", "", fmt.Errorf("no readable article at %q", pageURL)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", "", fmt.Errorf("fetch %s: HTTP %d", pageURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, nil)
	if err != nil {
		return "", "", fmt.Errorf("extract readable content from %s: %w", pageURL, err)
	}

	return article.Title, article.TextContent, nil
}
