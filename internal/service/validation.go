package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

// Markup fragments that identify a Shopify-powered storefront.
var shopifySignatures = []string{
	"shopify",
	"cdn.shopify.com",
	"myshopify.com",
	"shopify-features",
	"shopify_checkout",
	"shopify-section",
	"shopify_pay",
}

// Redirect and bot-filter statuses that still indicate a live site.
var reachableStatuses = map[int]bool{
	http.StatusOK:               true,
	http.StatusMovedPermanently: true,
	http.StatusFound:            true,
	http.StatusForbidden:        true,
}

// StoreValidator answers "is this URL a reachable commerce storefront".
// It is consumed as a boolean oracle by the analyze endpoint.
type StoreValidator struct {
	client *fetch.Client
}

// NewStoreValidator builds a validator around the given session.
func NewStoreValidator(client *fetch.Client) *StoreValidator {
	return &StoreValidator{client: client}
}

// ValidateStoreURL checks URL shape, reachability, and storefront
// signals. The products.json probe is authoritative; a homepage
// signature scan is the fallback, and a blocked (403) homepage is
// treated as an inconclusive yes.
func (v *StoreValidator) ValidateStoreURL(ctx context.Context, rawURL string) bool {
	siteURL := fetch.NormalizeURL(rawURL)
	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Host == "" {
		return false
	}

	// A failed HEAD is tolerated; some storefronts reject HEAD outright
	// but still answer the storefront probes below.
	if status, err := v.client.Head(ctx, siteURL); err == nil && !reachableStatuses[status] {
		return false
	}

	return v.looksLikeStorefront(ctx, siteURL)
}

func (v *StoreValidator) looksLikeStorefront(ctx context.Context, siteURL string) bool {
	status, body, err := v.client.Get(ctx, siteURL+"/products.json")
	if err == nil && status == http.StatusOK {
		var feed map[string]json.RawMessage
		if json.Unmarshal(body, &feed) == nil {
			_, hasProducts := feed["products"]
			return hasProducts
		}
		return false
	}

	status, body, err = v.client.Get(ctx, siteURL)
	if err != nil {
		return false
	}
	switch status {
	case http.StatusOK:
		content := strings.ToLower(string(body))
		for _, signature := range shopifySignatures {
			if strings.Contains(content, signature) {
				return true
			}
		}
		return false
	case http.StatusForbidden:
		// Blocked before we could look. Assume it might be a storefront
		// rather than rejecting a site that is merely hostile to bots.
		return true
	default:
		return false
	}
}
