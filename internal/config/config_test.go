package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_ANALYZE", "10/min")
	t.Setenv("SCRAPE_TIMEOUT", "2m")
	t.Setenv("MAX_CONCURRENT_SCRAPES", "8")
	t.Setenv("CACHE_DIR", "/tmp/profile-cache")
	t.Setenv("CACHE_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.CacheDir != "/tmp/profile-cache" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.ScrapeTimeout != 2*time.Minute || cfg.CacheTTL != 30*time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.MaxConcurrentScrapes != 8 {
		t.Fatalf("unexpected concurrency cap: %d", cfg.MaxConcurrentScrapes)
	}
	if cfg.RateLimitAnalyze.Requests != 10 || cfg.RateLimitAnalyze.Interval != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimitAnalyze)
	}

	t.Setenv("RATE_LIMIT_ANALYZE", "xyz")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid rate limit")
	}

	t.Setenv("RATE_LIMIT_ANALYZE", "5/min")
	t.Setenv("MAX_CONCURRENT_SCRAPES", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid concurrency cap")
	}
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Requests != 5 || cfg.Interval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if _, err := parseRateLimit("bad-format"); err == nil {
		t.Fatalf("expected error for malformed value")
	}
	if _, err := parseRateLimit("0/min"); err == nil {
		t.Fatalf("expected error for zero requests")
	}
	if _, err := parseRateLimit("5/day"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	if val := getEnv("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback, got %s", val)
	}
	t.Setenv("FOO", "value")
	if val := getEnv("FOO", "fallback"); val != "value" {
		t.Fatalf("expected env value, got %s", val)
	}
}

func TestParseDuration(t *testing.T) {
	if parseDuration("3h", time.Minute) != 3*time.Hour {
		t.Fatalf("expected 3h duration")
	}
	if parseDuration("invalid", time.Minute) != time.Minute {
		t.Fatalf("expected fallback duration")
	}
}
