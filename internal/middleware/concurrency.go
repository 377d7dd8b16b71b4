package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ConcurrencyLimiter caps how many analyze requests may scrape at the
// same time. Requests past the cap are rejected rather than queued, so
// callers see backpressure immediately instead of piling up behind a
// slow target site.
func ConcurrencyLimiter(limit int) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	slots := make(chan struct{}, limit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() != "/api/analyze" {
				return next(c)
			}

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
				return next(c)
			default:
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":       "too many concurrent analyses, try again shortly",
					"status_code": http.StatusTooManyRequests,
				})
			}
		}
	}
}
