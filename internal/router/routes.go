package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/config"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/handler"
	middlewarepkg "github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Analyze *handler.AnalyzeHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "healthy",
			"service":   "storefront insights",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/analyze", handlers.Analyze.Analyze,
		middlewarepkg.AnalyzeRateLimiter(cfg.RateLimitAnalyze),
		middlewarepkg.ConcurrencyLimiter(cfg.MaxConcurrentScrapes))
	api.POST("/validate-url", handlers.Analyze.ValidateURL)
}
