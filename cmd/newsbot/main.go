package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/app"
	"github.com/Marshal91/twitter-news-bot/internal/cache"
	"github.com/Marshal91/twitter-news-bot/internal/category"
	"github.com/Marshal91/twitter-news-bot/internal/composer"
	"github.com/Marshal91/twitter-news-bot/internal/config"
	"github.com/Marshal91/twitter-news-bot/internal/feed"
	"github.com/Marshal91/twitter-news-bot/internal/gate"
	"github.com/Marshal91/twitter-news-bot/internal/llm"
	"github.com/Marshal91/twitter-news-bot/internal/logger"
	"github.com/Marshal91/twitter-news-bot/internal/metrics"
	"github.com/Marshal91/twitter-news-bot/internal/ratelimit"
	"github.com/Marshal91/twitter-news-bot/internal/scraper"
	"github.com/Marshal91/twitter-news-bot/internal/selector"
	"github.com/Marshal91/twitter-news-bot/internal/storage"
	"github.com/Marshal91/twitter-news-bot/internal/trends"
	"github.com/Marshal91/twitter-news-bot/internal/twitter"
	"github.com/Marshal91/twitter-news-bot/internal/urlcheck"
)

func main() {
	logger.Init()

	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		// Pause before exit so a supervisor restart loop cannot hammer
		// external APIs.
		time.Sleep(60 * time.Second)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	table, err := category.Load(cfg.CategoriesPath)
	if err != nil {
		return err
	}
	slog.Info("category table loaded", "categories", table.Len())

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := llm.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer gemini.Close()

	twitterClient := twitter.NewClient(twitter.Credentials{
		APIKey:       cfg.TwitterAPIKey,
		APISecret:    cfg.TwitterAPISecret,
		AccessToken:  cfg.TwitterAccessToken,
		AccessSecret: cfg.TwitterAccessSecret,
	}, cfg.RequestTimeout)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	collector := feed.NewCollector(feed.NewRSSFetcher(cfg.RequestTimeout), table)
	checker := urlcheck.NewChecker(8 * time.Second)
	sel := selector.New(collector, store, checker, cfg.FreshnessWindow)
	comp := composer.New(gemini, scraper.NewExtractor(cfg.RequestTimeout), table, rng)
	pubGate := gate.New(twitterClient, cfg.PostInterval, ratelimit.NewDailyLimiter(cfg.DailyPostLimit))
	picker := trends.NewPicker(twitterClient, table, cache.New(), rng)

	orchestrator := app.NewOrchestrator(picker, sel, comp, pubGate, store, table, rng)

	sched, err := app.NewScheduler(orchestrator, cfg.PostTimes, cfg.PostInterval)
	if err != nil {
		return err
	}

	if cfg.EnableMonitoring {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	slog.Info("scheduler started",
		"daily_times", cfg.PostTimes,
		"interval", cfg.PostInterval,
		"daily_limit", cfg.DailyPostLimit)
	sched.Start(ctx)
	slog.Info("shutting down")
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		return storage.OpenPostgresStore(cfg.DatabaseURL)
	}
	return storage.OpenFileStore(cfg.PostedLogPath, cfg.ContentHashLogPath)
}

func startMonitoringServer(port string) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	slog.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		slog.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if healthy, _ := stats["is_healthy"].(bool); !healthy {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
