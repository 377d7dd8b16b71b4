package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

// socialPlatform describes one supported network: the domains that
// identify it and the path segments that are navigation chrome rather
// than usernames.
type socialPlatform struct {
	name    string
	domains []string
	junk    []string
}

var socialPlatforms = []socialPlatform{
	{"facebook", []string{"facebook.com", "fb.com"}, []string{"www", "web", "home", "pages", "groups"}},
	{"instagram", []string{"instagram.com"}, []string{"www", "web", "home", "explore", "reels"}},
	{"twitter", []string{"twitter.com", "x.com"}, []string{"www", "web", "home", "explore", "notifications"}},
	{"tiktok", []string{"tiktok.com"}, []string{"www", "web", "home", "explore"}},
	{"youtube", []string{"youtube.com", "youtu.be"}, nil},
	{"linkedin", []string{"linkedin.com"}, nil},
	{"pinterest", []string{"pinterest.com"}, nil},
	{"snapchat", []string{"snapchat.com"}, nil},
}

var (
	schemePrefix     = regexp.MustCompile(`^https?://(www\.)?`)
	instagramHandle  = regexp.MustCompile(`instagram\.com/([^/?]+)`)
	facebookHandle   = regexp.MustCompile(`facebook\.com/([^/?]+)`)
	twitterHandle    = regexp.MustCompile(`(?:twitter|x)\.com/([^/?]+)`)
	tiktokHandle     = regexp.MustCompile(`tiktok\.com/@([^/?]+)`)
	youtubeChannelID = regexp.MustCompile(`youtube\.com/channel/([^/?]+)`)
	youtubeAtHandle  = regexp.MustCompile(`youtube\.com/@([^/?]+)`)
	youtubeCustomURL = regexp.MustCompile(`youtube\.com/c/([^/?]+)`)
)

// ExtractSocialHandles scans every external anchor on the homepage for
// known social-platform domains. The first link matching a platform
// wins, in document order; an unparseable profile URL is still recorded
// with an empty handle so the platform presence is not lost.
func ExtractSocialHandles(doc *goquery.Document) []entity.SocialHandle {
	handles := []entity.SocialHandle{}
	found := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href := strings.ToLower(link.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
			return
		}
		for _, platform := range socialPlatforms {
			if found[platform.name] || !containsAny(href, platform.domains) {
				continue
			}
			handles = append(handles, entity.SocialHandle{
				Platform: platform.name,
				URL:      href,
				Handle:   extractHandle(href, platform),
			})
			found[platform.name] = true
			break
		}
	})

	return handles
}

// extractHandle pulls the username segment out of a profile URL.
// Returns "" when no pattern applies or the segment is navigation junk.
func extractHandle(href string, platform socialPlatform) string {
	stripped := schemePrefix.ReplaceAllString(href, "")

	var pattern *regexp.Regexp
	switch platform.name {
	case "instagram":
		pattern = instagramHandle
	case "facebook":
		pattern = facebookHandle
	case "twitter":
		pattern = twitterHandle
	case "tiktok":
		pattern = tiktokHandle
	case "youtube":
		return extractYouTubeHandle(stripped)
	default:
		// linkedin, pinterest, snapchat: presence only, no handle format
		// worth guessing at.
		return ""
	}

	match := pattern.FindStringSubmatch(stripped)
	if match == nil {
		return ""
	}
	handle := match[1]
	for _, junk := range platform.junk {
		if handle == junk {
			return ""
		}
	}
	return handle
}

func extractYouTubeHandle(stripped string) string {
	if match := youtubeChannelID.FindStringSubmatch(stripped); match != nil {
		id := match[1]
		if len(id) > 20 {
			id = id[:20]
		}
		return "Channel: " + id + "..."
	}
	if match := youtubeAtHandle.FindStringSubmatch(stripped); match != nil {
		return match[1]
	}
	if match := youtubeCustomURL.FindStringSubmatch(stripped); match != nil {
		return match[1]
	}
	return ""
}
