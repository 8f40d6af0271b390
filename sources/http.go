// Package sources contains the outbound fetchers the per-game scrapers build
// on: plain HTTP, Reddit listings, the Steam News API, Discourse forums and a
// headless browser for JS-rendered pages.
//
// Every fetcher returns (data, error) and never panics past its boundary; a
// network failure, timeout or non-2xx status degrades to an error the calling
// scraper treats as "no data from this source, try the next one".
package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nextwipe/wipetime/backend/config"
)

// FetchHTML performs one GET with a browser User-Agent and the configured
// timeout, returning the response body as a string.
func FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", config.AppConfig.Scraper.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	client := http.Client{Timeout: config.AppConfig.Scraper.FetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get URL %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get URL %s: status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body from %s: %w", url, err)
	}
	return string(body), nil
}
