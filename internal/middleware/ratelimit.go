package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/config"
)

// AnalyzeRateLimiter applies a token bucket limiter for the analyze
// endpoint. Scrapes are expensive for the target site as much as for
// this service, so the bucket is shared across all callers.
func AnalyzeRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	var mu sync.Mutex

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() != "/api/analyze" {
				return next(c)
			}

			mu.Lock()
			allowed := limiter.Allow()
			mu.Unlock()

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":       "analyze rate limit exceeded",
					"status_code": http.StatusTooManyRequests,
				})
			}

			return next(c)
		}
	}
}
