package scraper

import (
	"context"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

const policyPreviewLimit = 2000

var (
	privacyPaths = []string{"/pages/privacy-policy", "/privacy-policy", "/pages/privacy"}
	returnsPaths = []string{"/pages/return-policy", "/return-policy", "/pages/returns", "/pages/refund-policy"}
)

func (s *Scraper) extractPolicies(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	if url, content, ok := s.findPolicyPage(ctx, siteURL, privacyPaths); ok {
		profile.PrivacyPolicyURL = url
		profile.PrivacyPolicyContent = content
	}
	if url, content, ok := s.findPolicyPage(ctx, siteURL, returnsPaths); ok {
		profile.ReturnRefundPolicyURL = url
		profile.ReturnRefundPolicyContent = content
	}
	return nil
}

// findPolicyPage walks a fixed path list and captures the first
// reachable page's URL and a cleaned text preview.
func (s *Scraper) findPolicyPage(ctx context.Context, siteURL string, paths []string) (string, string, bool) {
	for _, path := range paths {
		url := fetch.Join(siteURL, path)
		doc, err := s.fetchDocument(ctx, url)
		if err != nil {
			continue
		}
		return url, truncateRunes(CleanText(doc.Text()), policyPreviewLimit), true
	}
	return "", "", false
}
