package scraper

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

// BrandNameUnavailable is the placeholder used when every resolution
// method comes up empty.
const BrandNameUnavailable = "Brand Name Not Available"

// Suffixes storefront themes append to the page title, tested in this
// fixed order.
var titleSuffixes = []string{
	" - Online Store",
	" | Official Store",
	" Store",
	" Shop",
	" Official Site",
	" Website",
}

// brandNameMethod is one step of the resolution cascade; it returns ""
// when its signal is absent.
type brandNameMethod func(doc *goquery.Document) string

var brandNameMethods = []brandNameMethod{
	siteNameMeta,
	applicationNameMeta,
	titleTag,
}

// ResolveBrandName derives the brand name from homepage metadata,
// falling back to the domain label when metadata is too weak, and to a
// fixed placeholder when even that fails.
func ResolveBrandName(doc *goquery.Document, websiteURL string) string {
	name := ""
	for _, method := range brandNameMethods {
		if name = method(doc); name != "" {
			break
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 3 {
		if fromDomain := domainLabel(websiteURL); fromDomain != "" {
			name = fromDomain
		}
	}
	if strings.TrimSpace(name) == "" {
		return BrandNameUnavailable
	}
	return name
}

// ResolveBrandDescription returns the cleaned meta description, or ""
// when the page has none.
func ResolveBrandDescription(doc *goquery.Document) string {
	return CleanText(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
}

func siteNameMeta(doc *goquery.Document) string {
	return CleanText(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", ""))
}

func applicationNameMeta(doc *goquery.Document) string {
	return CleanText(doc.Find(`meta[name="application-name"]`).AttrOr("content", ""))
}

func titleTag(doc *goquery.Document) string {
	title := CleanText(doc.Find("title").First().Text())
	if title == "" {
		return ""
	}
	// Each suffix is tested in order against the progressively trimmed
	// title, so "Acme Shop - Online Store" reduces all the way to "Acme".
	for _, suffix := range titleSuffixes {
		if strings.HasSuffix(title, suffix) {
			title = strings.TrimSpace(strings.TrimSuffix(title, suffix))
		}
	}
	if idx := strings.Index(title, " | "); idx >= 0 {
		return strings.TrimSpace(title[:idx])
	}
	if idx := strings.Index(title, " - "); idx >= 0 {
		return strings.TrimSpace(title[:idx])
	}
	return title
}

// domainLabel turns "www.acme-store.com" into "Acme-store".
func domainLabel(websiteURL string) string {
	domain := strings.TrimPrefix(fetch.Domain(websiteURL), "www.")
	if !strings.Contains(domain, ".") {
		return ""
	}
	label := strings.SplitN(domain, ".", 2)[0]
	if label == "" {
		return ""
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
