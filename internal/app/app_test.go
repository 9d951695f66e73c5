package app

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/composer"
	"github.com/Marshal91/twitter-news-bot/internal/feed"
	"github.com/Marshal91/twitter-news-bot/internal/gate"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
	"github.com/Marshal91/twitter-news-bot/internal/selector"
	"github.com/Marshal91/twitter-news-bot/internal/storage"
)

type fixedPicker struct {
	category string
	term     string
}

func (p fixedPicker) Pick() (string, string) { return p.category, p.term }

type fixedFetcher struct {
	articles []feed.Article
}

func (f fixedFetcher) Fetch(sourceURL string) []feed.Article { return f.articles }

type aliveChecker struct{}

func (aliveChecker) IsAlive(url string) bool { return true }

type fixedSummarizer struct {
	text string
}

func (s fixedSummarizer) Summarize(ctx context.Context, title, excerpt, cat, trendTerm string) (string, error) {
	return s.text, nil
}

type recordingPublisher struct {
	posts []string
}

func (p *recordingPublisher) Publish(text string) error {
	p.posts = append(p.posts, text)
	return nil
}

func appTable() *category.Table {
	return category.NewTable([]category.Config{{
		Name:           "F1",
		Feeds:          []string{"http://feed/f1"},
		Hashtags:       []string{"#F1", "#Formula1"},
		Prefixes:       []string{"F1 news:"},
		EvergreenHooks: []string{"Lights out and away we go!"},
	}})
}

// TestRunOnce_PostsThenFallsBackToEvergreen drives the full pipeline with
// a single stubbed feed: the first run posts the article and records it,
// the second run finds only the already-posted article and publishes
// evergreen content instead.
func TestRunOnce_PostsThenFallsBackToEvergreen(t *testing.T) {
	table := appTable()
	dir := t.TempDir()
	store, err := storage.OpenFileStore(filepath.Join(dir, "links.txt"), filepath.Join(dir, "hashes.txt"))
	if err != nil {
		t.Fatal(err)
	}

	collector := feed.NewCollector(fixedFetcher{articles: []feed.Article{
		{Title: "Verstappen wins", URL: "http://x/1"},
	}}, table)
	sel := selector.New(collector, store, aliveChecker{}, 0)
	comp := composer.New(fixedSummarizer{text: "Max does it again!"}, nil, table, rand.New(rand.NewSource(1)))
	pub := &recordingPublisher{}
	pubGate := gate.New(pub, time.Nanosecond, nil)

	o := NewOrchestrator(fixedPicker{category: "F1"}, sel, comp, pubGate, store, table, rand.New(rand.NewSource(1)))

	o.RunOnce(context.Background())

	if len(pub.posts) != 1 {
		t.Fatalf("published %d posts after first run, want 1", len(pub.posts))
	}
	if !strings.Contains(pub.posts[0], "Max does it again!") {
		t.Errorf("post %q should carry the generated summary", pub.posts[0])
	}
	if !strings.HasSuffix(pub.posts[0], "\n\nhttp://x/1") {
		t.Errorf("post %q should end with the article URL", pub.posts[0])
	}

	posted, err := store.HasURL("http://x/1")
	if err != nil {
		t.Fatal(err)
	}
	if !posted {
		t.Error("published article must be recorded in the ledger")
	}

	o.RunOnce(context.Background())

	if len(pub.posts) != 2 {
		t.Fatalf("published %d posts after second run, want 2", len(pub.posts))
	}
	if !strings.Contains(pub.posts[1], "Lights out and away we go!") {
		t.Errorf("second post %q should be the evergreen fallback", pub.posts[1])
	}
	if strings.Contains(pub.posts[1], "http://x/1") {
		t.Errorf("evergreen post %q must not repeat the posted URL", pub.posts[1])
	}
}

type scriptedSelector struct {
	byCategory map[string]*feed.Article
	asked      []string
}

func (s *scriptedSelector) Select(cat string, now time.Time) (*feed.Article, error) {
	s.asked = append(s.asked, cat)
	return s.byCategory[cat], nil
}

type passthroughComposer struct{}

func (passthroughComposer) Compose(ctx context.Context, a feed.Article, cat, trendTerm string) string {
	return a.Title
}
func (passthroughComposer) FallbackPost(cat string) string { return "evergreen " + cat }

type refusingGate struct {
	attempts int
}

func (g *refusingGate) Publish(text, category string) bool {
	g.attempts++
	return false
}

func multiTable() *category.Table {
	return category.NewTable([]category.Config{
		{Name: "F1"}, {Name: "EPL"}, {Name: "Crypto"}, {Name: "Tesla"},
	})
}

func TestRunOnce_TriesAtMostTwoAlternates(t *testing.T) {
	sel := &scriptedSelector{byCategory: map[string]*feed.Article{}}
	pubGate := &refusingGate{}
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(fixedPicker{category: "F1"}, sel, passthroughComposer{}, pubGate, store, multiTable(), rand.New(rand.NewSource(1)))
	o.RunOnce(context.Background())

	// Primary plus at most two alternates.
	if len(sel.asked) != 3 {
		t.Errorf("selector consulted for %v, want the primary and 2 alternates", sel.asked)
	}
	if sel.asked[0] != "F1" {
		t.Errorf("primary category %q consulted first, want F1", sel.asked[0])
	}
	for _, cat := range sel.asked[1:] {
		if cat == "F1" {
			t.Error("the primary category must not be retried as an alternate")
		}
	}
}

func TestRunOnce_StopsAfterFirstSuccess(t *testing.T) {
	article := &feed.Article{Title: "Verstappen wins", URL: "http://x/1"}
	sel := &scriptedSelector{byCategory: map[string]*feed.Article{"F1": article}}
	pub := &recordingPublisher{}
	pubGate := gate.New(pub, time.Nanosecond, nil)
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(fixedPicker{category: "F1"}, sel, passthroughComposer{}, pubGate, store, multiTable(), rand.New(rand.NewSource(1)))
	o.RunOnce(context.Background())

	if len(sel.asked) != 1 {
		t.Errorf("selector consulted for %v, a successful primary must end the run", sel.asked)
	}
	if len(pub.posts) != 1 {
		t.Errorf("published %d posts, want 1", len(pub.posts))
	}
}

// blockingPicker parks inside Pick until released, so a test can hold a
// run in flight while firing more ticks at the orchestrator.
type blockingPicker struct {
	started chan struct{}
	release chan struct{}
	calls   int32
}

func (p *blockingPicker) Pick() (string, string) {
	atomic.AddInt32(&p.calls, 1)
	p.started <- struct{}{}
	<-p.release
	return "F1", ""
}

func TestRunOnce_DropsTicksWhileRunInFlight(t *testing.T) {
	picker := &blockingPicker{started: make(chan struct{}), release: make(chan struct{})}
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}
	o := NewOrchestrator(picker, &scriptedSelector{}, passthroughComposer{}, &refusingGate{}, store, multiTable(), rand.New(rand.NewSource(1)))

	done := make(chan struct{})
	go func() {
		o.RunOnce(context.Background())
		close(done)
	}()
	<-picker.started

	// A second tick lands while the first run is still inside Pick. It
	// must return immediately without starting another run.
	o.RunOnce(context.Background())

	if n := atomic.LoadInt32(&picker.calls); n != 1 {
		t.Errorf("picker entered %d times, overlapping ticks must be dropped", n)
	}

	close(picker.release)
	<-done
}

func TestRunOnce_FinalPostStaysWithinLimit(t *testing.T) {
	table := appTable()
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}

	// A summary near the cap leaves no room for the appended URL.
	collector := feed.NewCollector(fixedFetcher{articles: []feed.Article{
		{Title: "Verstappen wins", URL: "http://example.com/motorsport/2025/06/02/verstappen-wins-the-race"},
	}}, table)
	sel := selector.New(collector, store, aliveChecker{}, 0)
	comp := composer.New(fixedSummarizer{text: strings.Repeat("a", 270)}, nil, table, rand.New(rand.NewSource(1)))
	pub := &recordingPublisher{}
	pubGate := gate.New(pub, time.Nanosecond, nil)

	o := NewOrchestrator(fixedPicker{category: "F1"}, sel, comp, pubGate, store, table, rand.New(rand.NewSource(1)))
	o.RunOnce(context.Background())

	if len(pub.posts) != 1 {
		t.Fatalf("published %d posts, want 1", len(pub.posts))
	}
	if n := utf8.RuneCountInString(pub.posts[0]); n > 280 {
		t.Errorf("published post is %d runes, want <= 280", n)
	}
}

type failingSelector struct{}

func (failingSelector) Select(cat string, now time.Time) (*feed.Article, error) {
	return nil, errors.New("ledger unavailable")
}

func TestRunOnce_FailedRunReportsUnhealthy(t *testing.T) {
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}
	o := NewOrchestrator(fixedPicker{category: "F1"}, failingSelector{}, passthroughComposer{}, &refusingGate{}, store, multiTable(), rand.New(rand.NewSource(1)))

	o.RunOnce(context.Background())

	if metrics.Global.GetStats()["is_healthy"].(bool) {
		t.Error("a run where every category failed must leave the instance unhealthy")
	}
}

type panickingPicker struct{}

func (panickingPicker) Pick() (string, string) { panic("boom") }

func TestRunOnce_RecoversFromPanic(t *testing.T) {
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}
	o := NewOrchestrator(panickingPicker{}, &scriptedSelector{}, passthroughComposer{}, &refusingGate{}, store, multiTable(), rand.New(rand.NewSource(1)))

	// Must not propagate to the scheduler.
	o.RunOnce(context.Background())
}
