// Package scraper implements the extraction pipeline that turns a
// storefront's public pages into a structured brand profile. Every
// extractor is best-effort: a heuristic that finds nothing leaves its
// portion of the profile empty rather than failing the scrape.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

// ErrSiteInaccessible marks a scrape that failed before extraction
// because the site root could not be reached at all.
var ErrSiteInaccessible = errors.New("website not accessible or not found")

var (
	faqPaths     = []string{"/pages/faq", "/faq", "/pages/frequently-asked-questions", "/help", "/pages/help"}
	contactPaths = []string{"/pages/contact", "/contact", "/pages/contact-us", "/contact-us"}
)

// Scraper drives one scrape run against one target site, reusing a
// single HTTP session across every sub-step.
type Scraper struct {
	client *fetch.Client
}

// New builds a scraper around the given session.
func New(client *fetch.Client) *Scraper {
	return &Scraper{client: client}
}

// extractionStep is one fault-isolated stage of the pipeline. Steps
// write disjoint profile fields, so their order carries no data
// dependencies.
type extractionStep struct {
	name string
	run  func(ctx context.Context, siteURL string, profile *entity.BrandProfile) error
}

// ScrapeStore verifies the site is reachable and then runs every
// extraction step in sequence. A failing step is logged and skipped;
// only an unreachable site aborts the scrape.
func (s *Scraper) ScrapeStore(ctx context.Context, websiteURL string) (*entity.BrandProfile, error) {
	profile := entity.NewBrandProfile(websiteURL)

	log.Printf("scrape state=verifying-access site=%s", websiteURL)
	if err := s.client.VerifyAccess(ctx, websiteURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSiteInaccessible, err)
	}

	steps := []extractionStep{
		{"brand-info", s.extractBrandInfo},
		{"catalog", s.extractProductCatalog},
		{"hero-products", s.extractHeroProducts},
		{"policies", s.extractPolicies},
		{"faqs", s.extractFAQs},
		{"social", s.extractSocialHandles},
		{"contact", s.extractContactInfo},
		{"important-links", s.extractImportantLinks},
	}

	log.Printf("scrape state=extracting site=%s", websiteURL)
	for _, step := range steps {
		if err := step.run(ctx, websiteURL, profile); err != nil {
			log.Printf("scrape step=%s site=%s skipped: %v", step.name, websiteURL, err)
		}
	}

	log.Printf("scrape state=complete site=%s products=%d faqs=%d socials=%d",
		websiteURL, len(profile.ProductCatalog), len(profile.FAQs), len(profile.SocialHandles))
	return profile, nil
}

// fetchDocument retrieves and parses one page.
func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	page, err := s.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}

func (s *Scraper) extractBrandInfo(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}
	profile.BrandName = ResolveBrandName(doc, siteURL)
	profile.BrandDescription = ResolveBrandDescription(doc)
	return nil
}

func (s *Scraper) extractProductCatalog(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	page, err := s.client.Fetch(ctx, fetch.Join(siteURL, productsFeedPath))
	if err != nil {
		return err
	}
	products, err := ParseProductsFeed(page.Body, siteURL)
	if err != nil {
		return err
	}
	profile.ProductCatalog = products
	log.Printf("scrape step=catalog site=%s products=%d", siteURL, len(products))
	return nil
}

func (s *Scraper) extractHeroProducts(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}

	links := HeroProductLinks(doc, siteURL)
	if len(links) > maxHeroAttempts {
		links = links[:maxHeroAttempts]
	}

	heroes := []entity.Product{}
	for _, link := range links {
		if len(heroes) == maxHeroProducts {
			break
		}
		productDoc, err := s.fetchDocument(ctx, link)
		if err != nil {
			log.Printf("scrape step=hero-products url=%s skipped: %v", link, err)
			continue
		}
		heroes = append(heroes, ParseProductPage(productDoc, link))
	}
	profile.HeroProducts = heroes
	return nil
}

func (s *Scraper) extractFAQs(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	for _, path := range faqPaths {
		doc, err := s.fetchDocument(ctx, fetch.Join(siteURL, path))
		if err != nil {
			continue
		}
		if faqs := ParseFAQPage(doc); len(faqs) > 0 {
			profile.FAQs = faqs
			return nil
		}
	}

	// No dedicated FAQ page produced anything; try the homepage.
	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}
	profile.FAQs = ParseFAQPage(doc)
	return nil
}

func (s *Scraper) extractSocialHandles(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}
	profile.SocialHandles = ExtractSocialHandles(doc)
	return nil
}

func (s *Scraper) extractContactInfo(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	for _, path := range contactPaths {
		doc, err := s.fetchDocument(ctx, fetch.Join(siteURL, path))
		if err != nil {
			continue
		}
		if info := ExtractContactInfo(doc); info != nil {
			profile.ContactInfo = info
			return nil
		}
	}

	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}
	profile.ContactInfo = ExtractContactInfo(doc)
	return nil
}

func (s *Scraper) extractImportantLinks(ctx context.Context, siteURL string, profile *entity.BrandProfile) error {
	doc, err := s.fetchDocument(ctx, siteURL)
	if err != nil {
		return err
	}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		if href == "" {
			return
		}
		hrefLower := strings.ToLower(href)
		text := strings.ToLower(CleanText(link.Text()))
		for _, category := range importantLinkCategories {
			if containsAny(hrefLower, category.keywords) || containsAny(text, category.keywords) {
				if _, taken := profile.ImportantLinks[category.name]; !taken {
					profile.ImportantLinks[category.name] = fetch.Resolve(siteURL, href)
				}
				break
			}
		}
	})
	return nil
}
