// Package insights derives metrics, quality assessments and a
// completeness score from a scraped brand profile, and formats the
// profile for the API response. Everything here is a pure function over
// the data model.
package insights

import (
	"fmt"
	"time"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

const (
	responseCatalogImages   = 3
	responseHeroImages      = 2
	descriptionPreviewLimit = 200
	policyPreviewLimit      = 300
	goodDescriptionLength   = 50
	goodAnswerLength        = 30
	goodCoverage            = 0.8
)

// Analysis is the derived-metrics block attached to every analyze
// response.
type Analysis struct {
	BasicMetrics      BasicMetrics   `json:"basic_metrics"`
	ContentQuality    ContentQuality `json:"content_quality"`
	CompletenessScore float64        `json:"completeness_score"`
	Recommendations   []string       `json:"recommendations"`
}

// BasicMetrics counts what the scrape found.
type BasicMetrics struct {
	TotalProducts       int  `json:"total_products"`
	HeroProductsCount   int  `json:"hero_products_count"`
	FAQCount            int  `json:"faq_count"`
	SocialPlatforms     int  `json:"social_platforms"`
	ContactMethods      int  `json:"contact_methods"`
	ImportantLinksCount int  `json:"important_links_count"`
	HasPrivacyPolicy    bool `json:"has_privacy_policy"`
	HasReturnPolicy     bool `json:"has_return_policy"`
}

// CatalogQuality reports image and price coverage across the catalog.
type CatalogQuality struct {
	ImageCoverage string `json:"image_coverage"`
	PriceCoverage string `json:"price_coverage"`
	Overall       string `json:"overall"`
}

// ContentQuality rates the extracted content. ProductCatalog is either
// the string "missing" or a CatalogQuality block.
type ContentQuality struct {
	BrandDescription string `json:"brand_description"`
	ProductCatalog   any    `json:"product_catalog"`
	FAQs             string `json:"faqs"`
}

// Analyze computes the full metrics block for one profile.
func Analyze(profile *entity.BrandProfile) Analysis {
	return Analysis{
		BasicMetrics:      basicMetrics(profile),
		ContentQuality:    contentQuality(profile),
		CompletenessScore: completenessScore(profile),
		Recommendations:   recommendations(profile),
	}
}

func basicMetrics(profile *entity.BrandProfile) BasicMetrics {
	contactMethods := 0
	if profile.ContactInfo != nil {
		contactMethods = len(profile.ContactInfo.Emails) + len(profile.ContactInfo.PhoneNumbers)
	}
	return BasicMetrics{
		TotalProducts:       len(profile.ProductCatalog),
		HeroProductsCount:   len(profile.HeroProducts),
		FAQCount:            len(profile.FAQs),
		SocialPlatforms:     len(profile.SocialHandles),
		ContactMethods:      contactMethods,
		ImportantLinksCount: len(profile.ImportantLinks),
		HasPrivacyPolicy:    profile.PrivacyPolicyURL != "",
		HasReturnPolicy:     profile.ReturnRefundPolicyURL != "",
	}
}

func contentQuality(profile *entity.BrandProfile) ContentQuality {
	quality := ContentQuality{
		BrandDescription: "missing",
		ProductCatalog:   "missing",
		FAQs:             "missing",
	}

	if profile.BrandDescription != "" {
		quality.BrandDescription = "basic"
		if len(profile.BrandDescription) > goodDescriptionLength {
			quality.BrandDescription = "good"
		}
	}

	if total := len(profile.ProductCatalog); total > 0 {
		withImages, withPrices := 0, 0
		for _, product := range profile.ProductCatalog {
			if len(product.Images) > 0 {
				withImages++
			}
			if product.Price != "" {
				withPrices++
			}
		}
		imageCoverage := float64(withImages) / float64(total)
		priceCoverage := float64(withPrices) / float64(total)
		overall := "basic"
		if imageCoverage > goodCoverage && priceCoverage > goodCoverage {
			overall = "good"
		}
		quality.ProductCatalog = CatalogQuality{
			ImageCoverage: fmt.Sprintf("%.2f%%", imageCoverage*100),
			PriceCoverage: fmt.Sprintf("%.2f%%", priceCoverage*100),
			Overall:       overall,
		}
	}

	if len(profile.FAQs) > 0 {
		totalAnswerLength := 0
		for _, faq := range profile.FAQs {
			totalAnswerLength += len(faq.Answer)
		}
		quality.FAQs = "basic"
		if totalAnswerLength/len(profile.FAQs) > goodAnswerLength {
			quality.FAQs = "good"
		}
	}

	return quality
}

// completenessScore is the fraction of the expected top-level signals
// that the scrape managed to populate.
func completenessScore(profile *entity.BrandProfile) float64 {
	checks := []bool{
		profile.BrandName != "",
		len(profile.ProductCatalog) > 0,
		profile.PrivacyPolicyURL != "",
		profile.ContactInfo != nil,
		len(profile.SocialHandles) > 0,
	}
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return float64(filled) / float64(len(checks))
}

func recommendations(profile *entity.BrandProfile) []string {
	recs := []string{}
	if profile.BrandName == "" {
		recs = append(recs, "Brand name could not be extracted - check page title")
	}
	if len(profile.ProductCatalog) == 0 {
		recs = append(recs, "No products found - verify /products.json endpoint")
	}
	if profile.PrivacyPolicyURL == "" {
		recs = append(recs, "Privacy policy not found - check common policy pages")
	}
	if profile.ReturnRefundPolicyURL == "" {
		recs = append(recs, "Return/refund policy not found")
	}
	if len(profile.FAQs) == 0 {
		recs = append(recs, "No FAQs found - check for FAQ or help pages")
	}
	if profile.ContactInfo == nil {
		recs = append(recs, "Contact information not found - check contact page")
	}
	if len(profile.SocialHandles) == 0 {
		recs = append(recs, "No social media handles found")
	}
	if len(profile.ImportantLinks) < 3 {
		recs = append(recs, "Limited important links found - may need manual verification")
	}
	return recs
}

// FormatProfile shapes a profile for the JSON response: long text is
// cut down to previews and per-product image lists are capped.
func FormatProfile(profile *entity.BrandProfile) map[string]any {
	catalog := make([]map[string]any, 0, len(profile.ProductCatalog))
	for _, product := range profile.ProductCatalog {
		catalog = append(catalog, map[string]any{
			"id":               product.ID,
			"title":            product.Title,
			"handle":           product.Handle,
			"description":      preview(product.Description, descriptionPreviewLimit),
			"vendor":           product.Vendor,
			"product_type":     product.ProductType,
			"price":            product.Price,
			"compare_at_price": product.CompareAtPrice,
			"available":        product.Available,
			"tags":             product.Tags,
			"images":           capImages(product.Images, responseCatalogImages),
			"url":              product.URL,
		})
	}

	heroes := make([]map[string]any, 0, len(profile.HeroProducts))
	for _, product := range profile.HeroProducts {
		heroes = append(heroes, map[string]any{
			"title":  product.Title,
			"price":  product.Price,
			"images": capImages(product.Images, responseHeroImages),
			"url":    product.URL,
		})
	}

	faqs := make([]map[string]any, 0, len(profile.FAQs))
	for _, faq := range profile.FAQs {
		faqs = append(faqs, map[string]any{
			"question": faq.Question,
			"answer":   faq.Answer,
			"category": nullable(faq.Category),
		})
	}

	socials := make([]map[string]any, 0, len(profile.SocialHandles))
	for _, handle := range profile.SocialHandles {
		socials = append(socials, map[string]any{
			"platform": handle.Platform,
			"url":      handle.URL,
			"handle":   nullable(handle.Handle),
		})
	}

	var contact map[string]any
	if profile.ContactInfo != nil {
		contact = map[string]any{
			"emails":        profile.ContactInfo.Emails,
			"phone_numbers": profile.ContactInfo.PhoneNumbers,
			"address":       nullable(profile.ContactInfo.Address),
		}
	}

	return map[string]any{
		"website_url":       profile.WebsiteURL,
		"brand_name":        profile.BrandName,
		"brand_description": nullable(profile.BrandDescription),
		"scraped_at":        profile.ScrapedAt.Format(time.RFC3339),
		"product_catalog":   catalog,
		"hero_products":     heroes,
		"privacy_policy": map[string]any{
			"url":             nullable(profile.PrivacyPolicyURL),
			"content_preview": nullable(preview(profile.PrivacyPolicyContent, policyPreviewLimit)),
		},
		"return_refund_policy": map[string]any{
			"url":             nullable(profile.ReturnRefundPolicyURL),
			"content_preview": nullable(preview(profile.ReturnRefundPolicyContent, policyPreviewLimit)),
		},
		"faqs":            faqs,
		"social_handles":  socials,
		"contact_info":    contact,
		"important_links": profile.ImportantLinks,
	}
}

// preview caps text at limit runes, appending an ellipsis when cut.
func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func capImages(images []string, limit int) []string {
	if images == nil {
		return []string{}
	}
	if len(images) > limit {
		return images[:limit]
	}
	return images
}

// nullable maps empty strings to JSON null, matching fields that are
// semantically "absent" rather than empty.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
