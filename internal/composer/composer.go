// Package composer turns a chosen article, or the absence of one, into
// final publishable text within the platform's 280-character limit.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/feed"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
)

const (
	// maxPostLen is the hard platform cap.
	maxPostLen = 280
	// hashtagBudget is the soft budget before the URL is appended.
	hashtagBudget = 240
	// trendPrefixLimit: the trend prefix is only prepended to short posts.
	trendPrefixLimit = 180
	// maxHashtags per post.
	maxHashtags = 2
	// fallbackTitleLen caps the title clause in the deterministic template.
	fallbackTitleLen = 80
)

// Summarizer is the language-model collaborator. It may fail entirely;
// Compose falls back to a deterministic template.
type Summarizer interface {
	Summarize(ctx context.Context, title, excerpt, category, trendTerm string) (string, error)
}

// ExcerptExtractor supplies a short page excerpt, best effort.
type ExcerptExtractor interface {
	Excerpt(url string) (string, error)
}

type Composer struct {
	summarizer Summarizer
	extractor  ExcerptExtractor
	table      *category.Table
	rng        *rand.Rand
}

func New(summarizer Summarizer, extractor ExcerptExtractor, table *category.Table, rng *rand.Rand) *Composer {
	return &Composer{summarizer: summarizer, extractor: extractor, table: table, rng: rng}
}

// Compose builds the post body for an article. The URL is appended by the
// caller, so the hashtag budget stops at 240 characters.
func (c *Composer) Compose(ctx context.Context, article feed.Article, cat, trendTerm string) string {
	var excerpt string
	if c.extractor != nil {
		var err error
		excerpt, err = c.extractor.Excerpt(article.URL)
		if err != nil {
			slog.Debug("could not extract article content", "url", article.URL, "error", err)
			excerpt = ""
		}
	}

	text, err := c.summarizer.Summarize(ctx, article.Title, excerpt, cat, trendTerm)
	if err != nil {
		slog.Warn("post generation failed, using template fallback", "error", err)
		metrics.Global.IncrementGenerationFailures()
		return c.templatePost(article.Title, cat, trendTerm)
	}
	text = strings.TrimSpace(text)

	if trendTerm != "" && utf8.RuneCountInString(text) < trendPrefixLimit {
		text = fmt.Sprintf("Trending %s: %s", trendTerm, text)
	}

	text = c.appendMatchingHashtags(text, article.Title, cat)
	return Truncate(text)
}

// appendMatchingHashtags adds up to 2 category hashtags, but only ones
// whose bare word already appears in the post or the title, and only
// while they fit the 240-character budget.
func (c *Composer) appendMatchingHashtags(text, title, cat string) string {
	tags := c.table.Lookup(cat).Hashtags
	if len(tags) == 0 {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerTitle := strings.ToLower(title)
	remaining := hashtagBudget - utf8.RuneCountInString(text)

	var selected []string
	for i, tag := range tags {
		if i >= 3 {
			break
		}
		bare := strings.ToLower(strings.TrimPrefix(tag, "#"))
		if !strings.Contains(lowerText, bare) && !strings.Contains(lowerTitle, bare) {
			continue
		}
		cost := utf8.RuneCountInString(" " + tag)
		if cost <= remaining && len(selected) < maxHashtags {
			selected = append(selected, tag)
			remaining -= cost
		}
	}

	if len(selected) > 0 {
		text += " " + strings.Join(selected, " ")
	}
	return text
}

// templatePost is the deterministic fallback when the language model is
// unavailable: category prefix plus the title's first clause.
func (c *Composer) templatePost(title, cat, trendTerm string) string {
	var mainPart string
	if idx := strings.Index(title, ":"); idx >= 0 {
		mainPart = strings.TrimSpace(title[:idx])
	} else {
		mainPart = truncateRunes(title, fallbackTitleLen)
	}

	cfg := c.table.Lookup(cat)
	prefix := "News:"
	if len(cfg.Prefixes) > 0 {
		prefix = cfg.Prefixes[c.rng.Intn(len(cfg.Prefixes))]
	}

	text := prefix + " " + mainPart
	if trendTerm != "" {
		text = fmt.Sprintf("Trending %s - %s", trendTerm, text)
	}

	if len(cfg.Hashtags) > 0 && utf8.RuneCountInString(text) < 200 {
		text += " " + cfg.Hashtags[0]
	}

	return Truncate(text)
}

// FallbackPost builds the evergreen post used when no valid candidate
// article exists for the category.
func (c *Composer) FallbackPost(cat string) string {
	cfg := c.table.Lookup(cat)
	if len(cfg.EvergreenHooks) == 0 {
		return Truncate(fmt.Sprintf("No fresh news today for %s, but the passion never stops!", cat))
	}

	post := cfg.EvergreenHooks[c.rng.Intn(len(cfg.EvergreenHooks))]
	if n := len(cfg.Hashtags); n > 0 {
		picks := c.rng.Perm(n)
		if len(picks) > maxHashtags {
			picks = picks[:maxHashtags]
		}
		for _, i := range picks {
			post += " " + cfg.Hashtags[i]
		}
	}

	return Truncate(post)
}

// Truncate enforces the 280-character cap: longer text is cut to 277
// characters plus an ellipsis.
func Truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxPostLen {
		return text
	}
	return string([]rune(text)[:maxPostLen-3]) + "..."
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
