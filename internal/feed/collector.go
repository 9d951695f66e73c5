package feed

import (
	"log/slog"

	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
)

// Collector gathers candidate articles for a category from its configured
// feed sources.
type Collector struct {
	fetcher Fetcher
	table   *category.Table
}

func NewCollector(fetcher Fetcher, table *category.Table) *Collector {
	return &Collector{fetcher: fetcher, table: table}
}

// Collect queries the category's sources in declared order and stops at
// the first source that yields at least one article. That short-circuit is
// a politeness/latency trade-off: one tick needs one article, not a full
// aggregation across every source.
//
// When the whole pass yields nothing, the category's fallback keywords
// drive extra retry passes over the same sources. The keywords are never
// embedded into the feed queries; they only gate how many times we retry.
// Inherited behavior, kept as-is.
func (c *Collector) Collect(cat string) []Article {
	cfg := c.table.Lookup(cat)
	if len(cfg.Feeds) == 0 {
		slog.Warn("no feeds configured for category", "category", cat)
		return nil
	}

	var articles []Article
	for _, source := range cfg.Feeds {
		articles = append(articles, c.fetcher.Fetch(source)...)
		if len(articles) > 0 {
			break
		}
	}

	if len(articles) == 0 && len(cfg.FallbackKeywords) > 0 {
		slog.Info("no articles found, retrying with fallback keywords", "category", cat)
		for _, keyword := range cfg.FallbackKeywords {
			for _, source := range cfg.Feeds {
				articles = append(articles, c.fetcher.Fetch(source)...)
			}
			if len(articles) > 0 {
				slog.Info("fallback pass yielded articles", "category", cat, "keyword", keyword, "articles", len(articles))
				break
			}
		}
	}

	metrics.Global.AddArticlesFetched(int64(len(articles)))
	slog.Info("collected articles", "category", cat, "count", len(articles))
	return articles
}
