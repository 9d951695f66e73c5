// Package app ties the pipeline together: one run per scheduled tick,
// never letting a single run's failure reach the scheduler.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/feed"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
	"github.com/Marshal91/twitter-news-bot/internal/storage"
)

// maxAlternateCategories caps how many backup categories a run tries
// after the primary fails.
const maxAlternateCategories = 2

// CategoryPicker chooses the category for this tick, plus the trend term
// that steered the choice, if any.
type CategoryPicker interface {
	Pick() (category string, trendTerm string)
}

// CandidateSelector returns the first usable article, or nil when the
// category has nothing postable.
type CandidateSelector interface {
	Select(category string, now time.Time) (*feed.Article, error)
}

// PostComposer produces publishable text for an article or the evergreen
// fallback for a category.
type PostComposer interface {
	Compose(ctx context.Context, article feed.Article, category, trendTerm string) string
	FallbackPost(category string) string
}

// PublicationGate performs the publish, honoring interval and retry
// policy. Returns whether the post went out.
type PublicationGate interface {
	Publish(text, category string) bool
}

type Orchestrator struct {
	picker   CategoryPicker
	selector CandidateSelector
	composer PostComposer
	gate     PublicationGate
	store    storage.Store
	table    *category.Table

	rng *rand.Rand
	now func() time.Time

	running atomic.Bool
}

func NewOrchestrator(picker CategoryPicker, selector CandidateSelector, composer PostComposer, gate PublicationGate, store storage.Store, table *category.Table, rng *rand.Rand) *Orchestrator {
	return &Orchestrator{
		picker:   picker,
		selector: selector,
		composer: composer,
		gate:     gate,
		store:    store,
		table:    table,
		rng:      rng,
		now:      time.Now,
	}
}

// RunOnce executes one posting run: pick a category, select a candidate,
// compose, publish. If the primary category fails, up to two random
// alternates are tried. All failures are logged here; nothing propagates.
//
// Runs never overlap. Every schedule entry funnels through this guard, so
// a tick that lands while a run is in flight is dropped, not queued.
func (o *Orchestrator) RunOnce(ctx context.Context) {
	if !o.running.CompareAndSwap(false, true) {
		slog.Info("previous run still in progress, skipping tick")
		return
	}
	defer o.running.Store(false)

	start := o.now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("run panicked", "panic", r)
			metrics.Global.SetError(fmt.Sprintf("panic: %v", r))
		}
		metrics.Global.RecordRunDuration(o.now().Sub(start))
		metrics.Global.SetLastRun()
	}()

	slog.Info("starting posting run")

	primary, trendTerm := o.picker.Pick()
	if primary == "" {
		slog.Error("no categories configured, skipping run")
		return
	}

	if o.postUpdate(ctx, primary, trendTerm) {
		metrics.Global.SetHealthy()
		slog.Info("posting run completed", "category", primary)
		return
	}

	slog.Info("primary category failed, trying alternates", "primary", primary)
	for _, alt := range o.alternates(primary) {
		if o.postUpdate(ctx, alt, "") {
			metrics.Global.SetHealthy()
			slog.Info("posting run completed", "category", alt)
			return
		}
	}

	metrics.Global.IncrementRunFailures()
	slog.Warn("posting run exhausted all categories without publishing")
}

// alternates returns up to 2 categories other than the primary, in random
// order.
func (o *Orchestrator) alternates(primary string) []string {
	var backups []string
	for _, name := range o.table.Names() {
		if name != primary {
			backups = append(backups, name)
		}
	}
	o.rng.Shuffle(len(backups), func(i, j int) {
		backups[i], backups[j] = backups[j], backups[i]
	})
	if len(backups) > maxAlternateCategories {
		backups = backups[:maxAlternateCategories]
	}
	return backups
}

// postUpdate attempts one category: select, compose, publish, record.
func (o *Orchestrator) postUpdate(ctx context.Context, cat, trendTerm string) bool {
	article, err := o.selector.Select(cat, o.now())
	if err != nil {
		slog.Error("candidate selection failed", "category", cat, "error", err)
		metrics.Global.SetError(err.Error())
		return false
	}

	if article == nil {
		slog.Info("no new articles, posting evergreen content", "category", cat)
		text := o.composer.FallbackPost(cat)
		if !o.gate.Publish(text, cat) {
			return false
		}
		metrics.Global.IncrementEvergreenPosts()
		return true
	}

	body := o.composer.Compose(ctx, *article, cat, trendTerm)
	post := body + "\n\n" + article.URL

	if !o.gate.Publish(post, cat) {
		return false
	}

	if err := o.store.Record(article.URL, article.Title); err != nil {
		// The post is out; a ledger write failure must be loud because the
		// next run could pick the same article again.
		slog.Error("failed to record posted article", "url", article.URL, "error", err)
		metrics.Global.SetError(err.Error())
	}

	slog.Info("posted article", "category", cat, "title", article.Title)
	return true
}
