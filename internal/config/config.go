package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port                 string
	RateLimitAnalyze     RateLimitConfig
	ScrapeTimeout        time.Duration
	MaxConcurrentScrapes int
	CacheDir             string
	CacheTTL             time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		ScrapeTimeout: parseDuration(getEnv("SCRAPE_TIMEOUT", "3m"), 3*time.Minute),
		CacheDir:      os.Getenv("CACHE_DIR"),
		CacheTTL:      parseDuration(getEnv("CACHE_TTL", "15m"), 15*time.Minute),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_ANALYZE", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ANALYZE value: %w", err)
	}
	cfg.RateLimitAnalyze = rl

	concurrent, err := parsePositiveInt(getEnv("MAX_CONCURRENT_SCRAPES", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CONCURRENT_SCRAPES value: %w", err)
	}
	cfg.MaxConcurrentScrapes = concurrent

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected a positive integer, got %q", value)
	}
	return n, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}
