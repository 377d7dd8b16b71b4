package scraper

import "strings"

// linkCategory pairs a category name with the keywords that signal it.
// Categories are checked in slice order and the first hit wins, so more
// specific categories must come before catch-all ones.
type linkCategory struct {
	name     string
	keywords []string
}

var linkCategories = []linkCategory{
	{"contact", []string{"contact", "support", "help"}},
	{"about", []string{"about", "story", "company"}},
	{"shipping", []string{"shipping", "delivery"}},
	{"returns", []string{"return", "refund", "exchange"}},
	{"privacy", []string{"privacy", "policy"}},
	{"terms", []string{"terms", "conditions"}},
	{"faq", []string{"faq", "frequently", "questions"}},
	{"blog", []string{"blog", "news", "article"}},
	{"track", []string{"track", "order", "tracking"}},
	{"careers", []string{"career", "job", "hiring"}},
	{"wholesale", []string{"wholesale", "bulk", "b2b"}},
}

// importantLinkCategories drives the footer/header link sweep on the
// homepage. It is a separate, coarser table than linkCategories.
var importantLinkCategories = []linkCategory{
	{"order_tracking", []string{"track", "order", "tracking"}},
	{"contact_us", []string{"contact", "support"}},
	{"blog", []string{"blog", "news", "article"}},
	{"about", []string{"about"}},
	{"shipping", []string{"shipping"}},
	{"faq", []string{"faq", "help"}},
}

// ClassifyLink buckets a hyperlink into a known category by keyword
// match against both the href and the anchor text. Unmatched links are
// "other".
func ClassifyLink(url, anchorText string) string {
	urlLower := strings.ToLower(url)
	textLower := strings.ToLower(anchorText)
	for _, category := range linkCategories {
		if containsAny(urlLower, category.keywords) || containsAny(textLower, category.keywords) {
			return category.name
		}
	}
	return "other"
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
