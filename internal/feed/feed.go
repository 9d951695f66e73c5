// Package feed fetches candidate articles from per-category RSS sources.
package feed

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// maxEntriesPerFeed caps how many of the most recent entries a single
// source can contribute in one pass.
const maxEntriesPerFeed = 5

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Article is one candidate news item. Published is nil when the feed does
// not carry a usable timestamp.
type Article struct {
	Title     string
	URL       string
	Published *time.Time
}

// Fetcher pulls articles from a single feed source. Implementations must
// return an empty slice on any fetch or parse error, never an error.
type Fetcher interface {
	Fetch(sourceURL string) []Article
}

// RSSFetcher is the gofeed-backed Fetcher.
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher(timeout time.Duration) *RSSFetcher {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	p.Client = &http.Client{Timeout: timeout}
	return &RSSFetcher{parser: p}
}

// Fetch downloads and parses one feed, returning up to 5 entries in feed
// order. Errors are logged and swallowed: a broken source yields nothing.
func (f *RSSFetcher) Fetch(sourceURL string) []Article {
	parsed, err := f.parser.ParseURL(sourceURL)
	if err != nil {
		slog.Warn("feed fetch failed", "source", sourceURL, "error", err)
		return nil
	}

	items := parsed.Items
	if len(items) > maxEntriesPerFeed {
		items = items[:maxEntriesPerFeed]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		if item.Link == "" {
			continue
		}
		articles = append(articles, Article{
			Title:     item.Title,
			URL:       item.Link,
			Published: item.PublishedParsed,
		})
	}
	slog.Debug("feed fetched", "source", sourceURL, "articles", len(articles))
	return articles
}
