package fetch

import (
	"net/url"
	"strings"
)

// NormalizeURL trims whitespace, defaults the scheme to https and drops
// any trailing slash so path candidates can be appended directly.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// Domain returns the lower-cased host portion of a URL, or "" when the
// URL does not parse.
func Domain(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

// Resolve interprets href relative to base, mirroring how a browser
// would follow the link. Absolute hrefs pass through unchanged.
func Resolve(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// Join appends a site-relative path to the normalized site root.
func Join(site, path string) string {
	return NormalizeURL(site) + path
}
