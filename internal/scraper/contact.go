package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

const (
	maxEmails = 5
	maxPhones = 3
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`[+]?[\d\s\-()]{10,}`)
	digitPattern = regexp.MustCompile(`\D`)
)

// placeholder e-mail domains that themes ship in demo content.
var junkEmailPatterns = []string{"@example.", "@domain.", "@test.", "noreply@", "no-reply@"}

// ScanContactText pulls e-mail addresses and phone numbers out of a
// page's visible text. Emails are lower-cased; phone candidates must
// carry at least ten digits, and anything in international notation must
// additionally survive libphonenumber validation.
func ScanContactText(text string) (emails, phones []string) {
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(match)
		if isJunkEmail(email) || !hasValidEmailDomain(email) {
			continue
		}
		emails = append(emails, email)
	}

	for _, match := range phonePattern.FindAllString(text, -1) {
		candidate := strings.TrimSpace(match)
		digits := digitPattern.ReplaceAllString(candidate, "")
		if len(digits) < 10 || len(digits) > 15 {
			continue
		}
		if strings.HasPrefix(candidate, "+") && !isParseablePhone(candidate) {
			continue
		}
		phones = append(phones, candidate)
	}

	return emails, phones
}

func isJunkEmail(email string) bool {
	return containsAny(email, junkEmailPatterns)
}

// hasValidEmailDomain rejects matches whose domain part cannot be
// represented as an ASCII hostname.
func hasValidEmailDomain(email string) bool {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || !strings.Contains(parts[1], ".") {
		return false
	}
	ascii, err := idna.Lookup.ToASCII(parts[1])
	return err == nil && ascii != ""
}

func isParseablePhone(candidate string) bool {
	number, err := phonenumbers.Parse(candidate, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(number)
}

// ExtractContactInfo scans a parsed page and merges the findings into
// deduplicated, capped lists. Returns nil when nothing was found.
func ExtractContactInfo(doc *goquery.Document) *entity.ContactInfo {
	emails, phones := ScanContactText(doc.Text())
	emails = dedupeStrings(emails, maxEmails)
	phones = dedupeStrings(phones, maxPhones)
	if len(emails) == 0 && len(phones) == 0 {
		return nil
	}
	return &entity.ContactInfo{Emails: emails, PhoneNumbers: phones}
}

// dedupeStrings keeps first occurrences, capped at limit. The cap is a
// hard truncation, not a suggestion.
func dedupeStrings(values []string, limit int) []string {
	result := []string{}
	seen := map[string]bool{}
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
		if len(result) == limit {
			break
		}
	}
	return result
}
