// Package gate is the last stop before a post goes out: it enforces the
// minimum interval between posts, the daily budget, and the bounded retry
// policy around the actual publish call.
package gate

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/composer"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
	"github.com/Marshal91/twitter-news-bot/internal/ratelimit"
	"github.com/Marshal91/twitter-news-bot/internal/twitter"
)

const (
	// DefaultMinInterval is the minimum spacing between successful posts.
	DefaultMinInterval = 120 * time.Minute

	publishAttempts  = 3
	rateLimitBackoff = 15 * time.Minute
	transientBackoff = 30 * time.Second
)

// Publisher is the external publish collaborator.
type Publisher interface {
	Publish(text string) error
}

// Gate tracks the last successful publish in memory only; a process
// restart resets the interval clock, which at worst delays one post.
type Gate struct {
	publisher   Publisher
	minInterval time.Duration
	daily       *ratelimit.DailyLimiter

	now   func() time.Time
	sleep func(time.Duration)

	lastPost  time.Time
	hasPosted bool
}

func New(publisher Publisher, minInterval time.Duration, daily *ratelimit.DailyLimiter) *Gate {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Gate{
		publisher:   publisher,
		minInterval: minInterval,
		daily:       daily,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// CanPublish reports whether enough time has passed since the last
// successful publish.
func (g *Gate) CanPublish(now time.Time) bool {
	if !g.hasPosted {
		return true
	}
	return now.Sub(g.lastPost) >= g.minInterval
}

// Publish sends the text with up to 3 attempts. Rate limits wait 15
// minutes, transient errors 30 seconds, and a duplicate-content response
// aborts immediately. Returns whether the post went out.
func (g *Gate) Publish(text, category string) bool {
	// Composition budgets hashtags before the URL is appended, but the
	// assembled text must never reach the API over the platform cap.
	text = composer.Truncate(text)

	if !g.CanPublish(g.now()) {
		slog.Info("too soon to post, waiting for rate limit window", "category", category)
		return false
	}
	if g.daily != nil && !g.daily.Allow(g.now()) {
		return false
	}

	for attempt := 1; attempt <= publishAttempts; attempt++ {
		err := g.publisher.Publish(text)
		if err == nil {
			g.lastPost = g.now()
			g.hasPosted = true
			if g.daily != nil {
				g.daily.Record(g.lastPost)
			}
			metrics.Global.IncrementPostsPublished()
			slog.Info("post published", "category", category, "attempt", attempt)
			return true
		}

		switch {
		case errors.Is(err, twitter.ErrRateLimited):
			slog.Warn("rate limit hit, backing off", "wait", rateLimitBackoff, "attempt", attempt)
			if attempt == publishAttempts {
				return false
			}
			g.sleep(rateLimitBackoff)
		case errors.Is(err, twitter.ErrDuplicate):
			slog.Warn("duplicate post detected, skipping", "category", category)
			return false
		default:
			slog.Error("error publishing post", "attempt", attempt, "error", err)
			if attempt == publishAttempts {
				return false
			}
			g.sleep(transientBackoff)
		}
	}
	return false
}

// LastPost returns the last successful publish time, zero if none yet.
func (g *Gate) LastPost() (time.Time, bool) {
	return g.lastPost, g.hasPosted
}
