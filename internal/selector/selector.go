// Package selector picks the first usable candidate article for a
// category: fresh if possible, never posted before, and still reachable.
package selector

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/feed"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
	"github.com/Marshal91/twitter-news-bot/internal/storage"
)

// DefaultFreshnessWindow is the maximum article age preferred over older
// items.
const DefaultFreshnessWindow = 24 * time.Hour

// IsFresh reports whether the article falls inside the freshness window.
// Articles without a timestamp are fresh: unknown age is not penalized.
func IsFresh(a feed.Article, now time.Time, window time.Duration) bool {
	if a.Published == nil {
		return true
	}
	return now.Sub(*a.Published) <= window
}

// Collector yields the combined candidate list for a category.
type Collector interface {
	Collect(category string) []feed.Article
}

// LivenessChecker probes whether a URL still resolves.
type LivenessChecker interface {
	IsAlive(url string) bool
}

type Selector struct {
	collector Collector
	store     storage.Store
	checker   LivenessChecker
	window    time.Duration
}

func New(collector Collector, store storage.Store, checker LivenessChecker, window time.Duration) *Selector {
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	return &Selector{collector: collector, store: store, checker: checker, window: window}
}

// Select walks the category's candidates in source order and returns the
// first one that is unposted and alive, preferring the fresh subset when
// it is non-empty. A nil article with nil error means nothing usable was
// found and the caller should post evergreen content instead.
//
// Ledger read failures are returned, not treated as "not posted": posting
// a duplicate is worse than skipping a tick.
func (s *Selector) Select(category string, now time.Time) (*feed.Article, error) {
	articles := s.collector.Collect(category)

	var fresh []feed.Article
	for _, a := range articles {
		if IsFresh(a, now, s.window) {
			fresh = append(fresh, a)
		}
	}

	target := articles
	if len(fresh) > 0 {
		target = fresh
	}

	for i := range target {
		a := target[i]

		posted, err := s.store.HasURL(a.URL)
		if err != nil {
			return nil, fmt.Errorf("check posted url: %w", err)
		}
		if posted {
			metrics.Global.IncrementDuplicatesSkipped()
			continue
		}

		similar, err := s.store.HasFingerprint(storage.Fingerprint(a.Title))
		if err != nil {
			return nil, fmt.Errorf("check content fingerprint: %w", err)
		}
		if similar {
			metrics.Global.IncrementDuplicatesSkipped()
			slog.Debug("similar content already posted", "title", a.Title)
			continue
		}

		if !s.checker.IsAlive(a.URL) {
			metrics.Global.IncrementDeadLinksSkipped()
			slog.Info("skipping article with broken URL", "title", a.Title)
			continue
		}

		// First match wins
		return &a, nil
	}

	slog.Info("no usable candidate for category", "category", category, "candidates", len(target))
	return nil, nil
}
