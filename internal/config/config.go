package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Twitter credentials (OAuth1 user context)
	TwitterAPIKey       string
	TwitterAPISecret    string
	TwitterAccessToken  string
	TwitterAccessSecret string

	// Gemini settings
	GeminiAPIKey string

	// Posting policy
	PostTimes       []string // daily wall-clock trigger times, "HH:MM" UTC
	PostInterval    time.Duration
	DailyPostLimit  int
	FreshnessWindow time.Duration

	// Dedup store settings
	DatabaseURL        string // postgres store when set, file store otherwise
	PostedLogPath      string
	ContentHashLogPath string

	// Category table
	CategoriesPath string // optional YAML override of the built-in table

	// App settings
	RequestTimeout   time.Duration
	Debug            bool
	EnableMonitoring bool
	MonitoringPort   string
}

var timeOfDayRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		PostTimes:       []string{"05:30", "09:30", "12:00", "15:00", "17:30", "20:00", "22:30"},
		PostInterval:    120 * time.Minute,
		DailyPostLimit:  7,
		FreshnessWindow: 24 * time.Hour,
		RequestTimeout:  30 * time.Second,
		MonitoringPort:  "8080",
	}

	// Load from environment
	cfg.TwitterAPIKey = os.Getenv("TWITTER_API_KEY")
	cfg.TwitterAPISecret = os.Getenv("TWITTER_API_SECRET")
	cfg.TwitterAccessToken = os.Getenv("TWITTER_ACCESS_TOKEN")
	cfg.TwitterAccessSecret = os.Getenv("TWITTER_ACCESS_SECRET")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.PostedLogPath = getEnvOrDefault("POSTED_LOG_PATH", "posted_links.txt")
	cfg.ContentHashLogPath = getEnvOrDefault("CONTENT_HASH_LOG_PATH", "posted_content_hashes.txt")
	cfg.CategoriesPath = os.Getenv("CATEGORIES_CONFIG")
	cfg.MonitoringPort = getEnvOrDefault("MONITORING_PORT", cfg.MonitoringPort)

	if v := getEnvIntOrDefault("POST_INTERVAL_MINUTES", 0); v > 0 {
		cfg.PostInterval = time.Duration(v) * time.Minute
	}
	if v := getEnvIntOrDefault("DAILY_POST_LIMIT", 0); v > 0 {
		cfg.DailyPostLimit = v
	}
	if v := getEnvIntOrDefault("FRESHNESS_WINDOW_HOURS", 0); v > 0 {
		cfg.FreshnessWindow = time.Duration(v) * time.Hour
	}
	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}

	if v := os.Getenv("POST_TIMES"); v != "" {
		var times []string
		for _, t := range strings.Split(v, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				times = append(times, t)
			}
		}
		if len(times) > 0 {
			cfg.PostTimes = times
		}
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}
	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		cfg.EnableMonitoring = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"TWITTER_API_KEY", c.TwitterAPIKey},
		{"TWITTER_API_SECRET", c.TwitterAPISecret},
		{"TWITTER_ACCESS_TOKEN", c.TwitterAccessToken},
		{"TWITTER_ACCESS_SECRET", c.TwitterAccessSecret},
		{"GEMINI_API_KEY", c.GeminiAPIKey},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	for _, t := range c.PostTimes {
		if !timeOfDayRe.MatchString(t) {
			return fmt.Errorf("invalid post time %q, want HH:MM", t)
		}
	}

	return nil
}
