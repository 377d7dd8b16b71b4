package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

const testHomepage = `<html>
<head>
	<meta property="og:site_name" content="Acme Tea">
	<meta name="description" content="Small-batch teas shipped worldwide.">
	<title>Acme Tea Store</title>
</head>
<body>
	<a href="/products/green-tea">Green Tea</a>
	<a href="/collections/all">Shop all</a>
	<footer>
		<a href="/pages/contact">Contact us</a>
		<a href="/pages/about">About</a>
		<a href="/blogs/journal">Blog</a>
		<a href="https://instagram.com/acmetea">Instagram</a>
		<a href="https://www.facebook.com/acmetea">Facebook</a>
	</footer>
</body>
</html>`

const testFeed = `{"products": [
	{"id": 1, "title": "Green Tea", "handle": "green-tea",
	 "variants": [{"price": "9.99", "available": true}],
	 "images": [{"src": "https://cdn.shopify.com/green.jpg"}]}
]}`

const testProductPage = `<html><body>
	<h1>Green Tea</h1>
	<span class="price">9.99</span>
	<img src="https://cdn.shopify.com/green.jpg">
</body></html>`

const testFAQPage = `<html><body><dl>
	<dt>Do you ship worldwide?</dt><dd>Yes, to most countries.</dd>
</dl></body></html>`

const testContactPage = `<html><body>
	<p>Write to hello@acmetea.com or call (415) 555-0134.</p>
</body></html>`

// testSite serves a small fake storefront keyed by request path.
func testSite(t *testing.T) *fetch.Client {
	t.Helper()
	pages := map[string]string{
		"/":                     testHomepage,
		"/products.json":        testFeed,
		"/products/green-tea":   testProductPage,
		"/pages/faq":            testFAQPage,
		"/pages/contact":        testContactPage,
		"/pages/privacy-policy": `<html><body><h1>Privacy Policy</h1><p>We only use your data to fulfil orders.</p></body></html>`,
		"/pages/return-policy":  `<html><body><h1>Returns</h1><p>Returns accepted within 30 days.</p></body></html>`,
	}
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		if body, ok := pages[path]; ok {
			return htmlResponse(http.StatusOK, body), nil
		}
		return htmlResponse(http.StatusNotFound, "not found"), nil
	})
	return fetch.New(fetch.WithTransport(rt), fetch.WithRetryWait(time.Millisecond, 2*time.Millisecond))
}

func TestScrapeStore(t *testing.T) {
	s := New(testSite(t))
	profile, err := s.ScrapeStore(context.Background(), "https://acmetea.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.BrandName != "Acme Tea" {
		t.Errorf("brand name = %q", profile.BrandName)
	}
	if profile.BrandDescription != "Small-batch teas shipped worldwide." {
		t.Errorf("brand description = %q", profile.BrandDescription)
	}

	if len(profile.ProductCatalog) != 1 || profile.ProductCatalog[0].Handle != "green-tea" {
		t.Errorf("unexpected catalog: %+v", profile.ProductCatalog)
	}
	if len(profile.HeroProducts) != 1 || profile.HeroProducts[0].Title != "Green Tea" {
		t.Errorf("unexpected hero products: %+v", profile.HeroProducts)
	}

	if profile.PrivacyPolicyURL != "https://acmetea.com/pages/privacy-policy" {
		t.Errorf("privacy policy URL = %q", profile.PrivacyPolicyURL)
	}
	if !strings.Contains(profile.PrivacyPolicyContent, "fulfil orders") {
		t.Errorf("privacy policy content = %q", profile.PrivacyPolicyContent)
	}
	if profile.ReturnRefundPolicyURL != "https://acmetea.com/pages/return-policy" {
		t.Errorf("return policy URL = %q", profile.ReturnRefundPolicyURL)
	}

	if len(profile.FAQs) != 1 || profile.FAQs[0].Question != "Do you ship worldwide?" {
		t.Errorf("unexpected FAQs: %+v", profile.FAQs)
	}

	platforms := map[string]bool{}
	for _, h := range profile.SocialHandles {
		platforms[h.Platform] = true
	}
	if !platforms["instagram"] || !platforms["facebook"] {
		t.Errorf("unexpected social handles: %+v", profile.SocialHandles)
	}

	if profile.ContactInfo == nil || len(profile.ContactInfo.Emails) != 1 {
		t.Fatalf("unexpected contact info: %+v", profile.ContactInfo)
	}
	if profile.ContactInfo.Emails[0] != "hello@acmetea.com" {
		t.Errorf("email = %q", profile.ContactInfo.Emails[0])
	}

	for _, key := range []string{"contact_us", "about", "blog"} {
		if profile.ImportantLinks[key] == "" {
			t.Errorf("missing important link %q in %v", key, profile.ImportantLinks)
		}
	}

	if profile.ScrapedAt.IsZero() {
		t.Error("expected scrape timestamp")
	}
}

func TestScrapeStoreHeroProductBounds(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><head><title>Mega Goods</title></head><body>`)
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&sb, `<a href="/products/item-%d">Item %d</a>`, i, i)
	}
	sb.WriteString(`</body></html>`)
	homepage := sb.String()

	// newSite counts every product-page request; all other pages are
	// served uncounted so repeated homepage fetches don't skew totals.
	newSite := func(fetches *int32, productPage func(n int) *http.Response) *fetch.Client {
		rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			path := r.URL.Path
			if path == "" || path == "/" {
				return htmlResponse(http.StatusOK, homepage), nil
			}
			if n, err := strconv.Atoi(strings.TrimPrefix(path, "/products/item-")); err == nil {
				atomic.AddInt32(fetches, 1)
				return productPage(n), nil
			}
			return htmlResponse(http.StatusNotFound, "not found"), nil
		})
		return fetch.New(fetch.WithTransport(rt), fetch.WithRetryWait(time.Millisecond, 2*time.Millisecond))
	}

	t.Run("stops collecting at six products", func(t *testing.T) {
		var fetches int32
		s := New(newSite(&fetches, func(n int) *http.Response {
			return htmlResponse(http.StatusOK, fmt.Sprintf(`<html><body><h1>Item %d</h1></body></html>`, n))
		}))

		profile, err := s.ScrapeStore(context.Background(), "https://mega.example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profile.HeroProducts) != maxHeroProducts {
			t.Errorf("hero products = %d, want %d", len(profile.HeroProducts), maxHeroProducts)
		}
		if got := atomic.LoadInt32(&fetches); got != maxHeroProducts {
			t.Errorf("product page fetches = %d, want %d", got, maxHeroProducts)
		}
	})

	t.Run("attempts bounded when pages are missing", func(t *testing.T) {
		// Every even-numbered product page 404s, so the six-product target
		// is never reached; the attempt cap has to stop the walk instead.
		var fetches int32
		s := New(newSite(&fetches, func(n int) *http.Response {
			if n%2 == 0 {
				return htmlResponse(http.StatusNotFound, "gone")
			}
			return htmlResponse(http.StatusOK, fmt.Sprintf(`<html><body><h1>Item %d</h1></body></html>`, n))
		}))

		profile, err := s.ScrapeStore(context.Background(), "https://mega.example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := atomic.LoadInt32(&fetches); got != maxHeroAttempts {
			t.Errorf("product page fetches = %d, want %d", got, maxHeroAttempts)
		}
		if len(profile.HeroProducts) > maxHeroProducts {
			t.Fatalf("hero products = %d, exceeds cap %d", len(profile.HeroProducts), maxHeroProducts)
		}
		// Odd-numbered pages among the first ten links succeed.
		if len(profile.HeroProducts) != 5 {
			t.Errorf("hero products = %d, want 5", len(profile.HeroProducts))
		}
	})
}

func TestScrapeStoreInaccessibleSite(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return htmlResponse(http.StatusServiceUnavailable, ""), nil
	})
	client := fetch.New(fetch.WithTransport(rt), fetch.WithRetryWait(time.Millisecond, 2*time.Millisecond))

	s := New(client)
	_, err := s.ScrapeStore(context.Background(), "https://down.example.com")
	if !errors.Is(err, ErrSiteInaccessible) {
		t.Fatalf("expected ErrSiteInaccessible, got %v", err)
	}
}

func TestScrapeStoreContinuesPastFailingSteps(t *testing.T) {
	// Only the root page exists. Every sub-step that depends on another
	// page fails, yet the scrape still completes with a sparse profile.
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "" || r.URL.Path == "/" {
			return htmlResponse(http.StatusOK, `<html><head><title>Bare Goods</title></head><body></body></html>`), nil
		}
		return htmlResponse(http.StatusNotFound, "not found"), nil
	})
	client := fetch.New(fetch.WithTransport(rt), fetch.WithRetryWait(time.Millisecond, 2*time.Millisecond))

	s := New(client)
	profile, err := s.ScrapeStore(context.Background(), "https://bare.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.BrandName != "Bare Goods" {
		t.Errorf("brand name = %q", profile.BrandName)
	}
	if len(profile.ProductCatalog) != 0 || len(profile.FAQs) != 0 {
		t.Errorf("expected empty collections, got %+v", profile)
	}
	if profile.ContactInfo != nil {
		t.Errorf("expected nil contact info, got %+v", profile.ContactInfo)
	}
}
