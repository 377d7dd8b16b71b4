package storage

import (
	"context"
	"errors"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

// ErrNotFound is returned when no cached profile exists for a site, or
// when the cached entry has expired.
var ErrNotFound = errors.New("profile not cached")

// Repository caches scraped profiles so repeated analyze requests for
// the same storefront do not re-crawl it within the cache window.
type Repository interface {
	// SaveProfile stores the profile under its normalized site URL.
	SaveProfile(ctx context.Context, profile *entity.BrandProfile) error

	// GetProfile returns the cached profile for a site, or ErrNotFound.
	GetProfile(ctx context.Context, websiteURL string) (*entity.BrandProfile, error)

	// Close releases the underlying store.
	Close() error
}
