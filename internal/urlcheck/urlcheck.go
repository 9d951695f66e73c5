// Package urlcheck verifies that an article URL still resolves before it
// is used in a post.
package urlcheck

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Referer":         "https://www.google.com/",
}

const maxRedirects = 10

// Checker probes URLs with a HEAD request. Some sites reject HEAD with
// 405; those get one GET retry.
type Checker struct {
	client *http.Client
}

func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// IsAlive reports whether the URL resolves to retrievable content. Any
// network error, timeout, or redirect overflow counts as dead.
func (c *Checker) IsAlive(rawURL string) bool {
	status, err := c.probe(http.MethodHead, rawURL)
	if err != nil {
		slog.Debug("url validation failed", "url", rawURL, "error", err)
		return false
	}

	switch {
	case status == http.StatusOK:
		return true
	case status >= 300 && status < 400:
		// Redirect chain not followed to completion is still reachable.
		slog.Debug("url redirected but accessible", "url", rawURL)
		return true
	case status == http.StatusMethodNotAllowed:
		getStatus, err := c.probe(http.MethodGet, rawURL)
		if err != nil {
			return false
		}
		return getStatus == http.StatusOK
	case status == http.StatusForbidden:
		slog.Warn("url blocked (403 Forbidden)", "url", rawURL)
		return false
	default:
		slog.Debug("url validation failed", "url", rawURL, "status", status)
		return false
	}
}

func (c *Checker) probe(method, rawURL string) (int, error) {
	req, err := http.NewRequest(method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
