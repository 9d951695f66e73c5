// Package trends chooses which category gets this tick's post, optionally
// steered by what is currently trending.
package trends

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/cache"
	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/retry"
)

const trendCacheTTL = 15 * time.Minute

// Source is the external trending-topics collaborator.
type Source interface {
	Trending(woeid int) ([]string, error)
}

type Picker struct {
	source Source
	table  *category.Table
	cache  *cache.Cache
	rng    *rand.Rand
}

func NewPicker(source Source, table *category.Table, c *cache.Cache, rng *rand.Rand) *Picker {
	return &Picker{source: source, table: table, cache: c, rng: rng}
}

// Pick draws a random seed category, looks up trends for its region, and
// matches each trending term against every category's keyword list in
// table order. First match wins. No match, or a failed lookup, falls back
// to the seed category with no trend term.
//
// The category-to-region mapping is mostly degenerate: only the Kenyan
// categories carry a real WOEID, the rest share the worldwide placeholder.
func (p *Picker) Pick() (string, string) {
	names := p.table.Names()
	if len(names) == 0 {
		return "", ""
	}
	seed := names[p.rng.Intn(len(names))]

	woeid := p.table.Lookup(seed).WOEID
	terms, err := p.trending(woeid)
	if err != nil {
		slog.Warn("trend lookup failed, using seed category", "category", seed, "error", err)
		return seed, ""
	}

	if len(terms) > 5 {
		slog.Debug("trending terms", "woeid", woeid, "sample", terms[:5])
	}

	for _, term := range terms {
		lowerTerm := strings.ToLower(term)
		for _, cat := range names {
			for _, keyword := range p.table.Lookup(cat).TrendKeywords {
				if strings.Contains(lowerTerm, strings.ToLower(keyword)) {
					slog.Info("trend matched to category", "trend", term, "category", cat)
					return cat, term
				}
			}
		}
	}

	slog.Info("no trend match found, using seed category", "category", seed)
	return seed, ""
}

func (p *Picker) trending(woeid int) ([]string, error) {
	key := fmt.Sprintf("trends:%d", woeid)
	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			if terms, ok := cached.([]string); ok {
				return terms, nil
			}
		}
	}

	var terms []string
	err := retry.WithRetry(context.Background(), retry.RetryConfig{MaxAttempts: 2, Delay: 5 * time.Second}, func() error {
		t, err := p.source.Trending(woeid)
		if err != nil {
			return err
		}
		terms = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.Set(key, terms, trendCacheTTL)
	}
	return terms, nil
}
