package scraper

import (
	"regexp"
	"strings"
)

var (
	entityPattern = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	// Word characters, whitespace and common punctuation survive;
	// everything else (decorative glyphs, emoji, currency marks from
	// theme widgets) is dropped.
	strayPattern = regexp.MustCompile(`[^\w\s.,?!\-:;()\[\]'"/@#$%&*+=]`)
	pricePattern = regexp.MustCompile(`(?:Rs\.?|₹|\$|€|£|USD|INR)\s?[\d,]+(?:\.\d{1,2})?`)
)

// CleanText strips HTML entity codes and stray symbols from scraped
// text and collapses whitespace runs to single spaces. It is
// deterministic and idempotent; empty input yields empty output.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = entityPattern.ReplaceAllString(text, "")
	text = strayPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeQuestion produces the identity key used to deduplicate FAQs:
// lower-cased, whitespace-collapsed question text.
func NormalizeQuestion(question string) string {
	return strings.Join(strings.Fields(strings.ToLower(question)), " ")
}

// ExtractPrice returns the first price-looking token in text, currency
// marker included, or "" when none is present. Theme price elements mix
// labels ("Sale", "From") into the same node as the amount.
func ExtractPrice(text string) string {
	return strings.TrimSpace(pricePattern.FindString(text))
}

// truncateRunes caps s at limit runes. Policy pages and product
// descriptions are stored as previews, not full documents.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
