package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/dto"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/scraper"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/service/insights"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/storage"
)

// StoreScraper runs one full scrape against one storefront.
type StoreScraper interface {
	ScrapeStore(ctx context.Context, websiteURL string) (*entity.BrandProfile, error)
}

// URLValidator answers whether a URL points at a reachable storefront.
type URLValidator interface {
	ValidateStoreURL(ctx context.Context, rawURL string) bool
}

// AnalyzeHandler serves the analysis endpoints. Each analyze request
// gets its own scraper so HTTP sessions are never shared across runs.
type AnalyzeHandler struct {
	newScraper    func() StoreScraper
	validator     URLValidator
	cache         storage.Repository
	scrapeTimeout time.Duration
}

// NewAnalyzeHandler constructs the handler with its production wiring.
func NewAnalyzeHandler(validator URLValidator, cache storage.Repository, scrapeTimeout time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		newScraper:    func() StoreScraper { return scraper.New(fetch.New()) },
		validator:     validator,
		cache:         cache,
		scrapeTimeout: scrapeTimeout,
	}
}

// NewAnalyzeHandlerWithScraper allows injecting a scraper factory (useful for tests).
func NewAnalyzeHandlerWithScraper(newScraper func() StoreScraper, validator URLValidator, cache storage.Repository, scrapeTimeout time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		newScraper:    newScraper,
		validator:     validator,
		cache:         cache,
		scrapeTimeout: scrapeTimeout,
	}
}

// Analyze handles POST /api/analyze.
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid request", "request body must be JSON with a website_url field")
	}

	req.WebsiteURL = strings.TrimSpace(req.WebsiteURL)
	if req.WebsiteURL == "" {
		return Error(c, http.StatusBadRequest, "website_url is required")
	}

	siteURL := fetch.NormalizeURL(req.WebsiteURL)
	if parsed, err := url.Parse(siteURL); err != nil || parsed.Host == "" {
		return Error(c, http.StatusBadRequest, "Invalid request", "website_url is not a valid URL")
	}

	ctx := c.Request().Context()

	if !req.ForceRefresh && h.cache != nil {
		if profile, err := h.cache.GetProfile(ctx, siteURL); err == nil {
			log.Printf("analyze site=%s source=cache", siteURL)
			return Success(c, insights.FormatProfile(profile), insights.Analyze(profile))
		} else if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("analyze site=%s cache lookup failed: %v", siteURL, err)
		}
	}

	if !h.validator.ValidateStoreURL(ctx, siteURL) {
		return Error(c, http.StatusUnauthorized, "Website not accessible or not found",
			"the URL does not appear to be a reachable store")
	}

	scrapeCtx := ctx
	if h.scrapeTimeout > 0 {
		var cancel context.CancelFunc
		scrapeCtx, cancel = context.WithTimeout(ctx, h.scrapeTimeout)
		defer cancel()
	}

	profile, err := h.newScraper().ScrapeStore(scrapeCtx, siteURL)
	if err != nil {
		if errors.Is(err, scraper.ErrSiteInaccessible) {
			return Error(c, http.StatusUnauthorized, "Website not accessible or not found")
		}
		log.Printf("analyze site=%s scrape failed: %v", siteURL, err)
		return Error(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}

	if h.cache != nil {
		if err := h.cache.SaveProfile(ctx, profile); err != nil {
			log.Printf("analyze site=%s cache save failed: %v", siteURL, err)
		}
	}

	return Success(c, insights.FormatProfile(profile), insights.Analyze(profile))
}

// ValidateURL handles POST /api/validate-url.
func (h *AnalyzeHandler) ValidateURL(c echo.Context) error {
	var req dto.ValidateURLRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid request", "request body must be JSON with a website_url field")
	}

	req.WebsiteURL = strings.TrimSpace(req.WebsiteURL)
	if req.WebsiteURL == "" {
		return Error(c, http.StatusBadRequest, "website_url is required")
	}

	siteURL := fetch.NormalizeURL(req.WebsiteURL)
	valid := h.validator.ValidateStoreURL(c.Request().Context(), siteURL)

	return c.JSON(http.StatusOK, map[string]any{
		"website_url":            siteURL,
		"is_valid_shopify_store": valid,
	})
}
