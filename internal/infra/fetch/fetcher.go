package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/satyacheck-ai/satyacheck/internal/domain/analysis"
)

// Browser-like UA to get past trivial bot-blocking
const userAgent = "Mozilla/5.0"

const defaultTimeout = 10 * time.Second

// Fetcher retrieves webpage text for the URL analysis variant.
type Fetcher struct {
	client *http.Client
}

func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// PageText issues one GET and concatenates the text of every paragraph
// element with single spaces. A page without paragraphs yields an empty
// string, not an error. No retry: any failure surfaces immediately as
// *analysis.FetchError.
func (f *Fetcher) PageText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.FetchError{Cause: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.FetchError{Cause: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.FetchError{Cause: fmt.Sprintf("%s returned status %d", url, resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &domain.FetchError{Cause: err.Error()}
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " "), nil
}
