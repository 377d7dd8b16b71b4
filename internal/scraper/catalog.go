package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
)

const (
	maxHeroProducts     = 6
	maxHeroAttempts     = 10
	maxHeroImages       = 3
	productsFeedPath    = "/products.json"
	productPathFragment = "/products/"
)

// flexString tolerates feeds that serialize prices and ids as either
// JSON strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

type feedVariant struct {
	Price          flexString  `json:"price"`
	CompareAtPrice *flexString `json:"compare_at_price"`
	Available      bool        `json:"available"`
}

type feedProduct struct {
	ID          flexString        `json:"id"`
	Title       string            `json:"title"`
	Handle      string            `json:"handle"`
	BodyHTML    string            `json:"body_html"`
	Vendor      string            `json:"vendor"`
	ProductType string            `json:"product_type"`
	Tags        []string          `json:"tags"`
	Variants    []feedVariant     `json:"variants"`
	Images      []json.RawMessage `json:"images"`
}

type productsFeed struct {
	Products []feedProduct `json:"products"`
}

// ParseProductsFeed converts the raw products.json payload into typed
// product records. Price, compare-at price and availability come from
// the first variant; images accept both object-with-src and bare-string
// entries.
func ParseProductsFeed(payload []byte, siteURL string) ([]entity.Product, error) {
	var feed productsFeed
	if err := json.Unmarshal(payload, &feed); err != nil {
		return nil, fmt.Errorf("decoding products feed: %w", err)
	}

	products := make([]entity.Product, 0, len(feed.Products))
	for _, raw := range feed.Products {
		product := entity.Product{
			ID:          string(raw.ID),
			Title:       CleanText(raw.Title),
			Handle:      raw.Handle,
			Description: CleanText(raw.BodyHTML),
			Vendor:      raw.Vendor,
			ProductType: raw.ProductType,
			Tags:        raw.Tags,
			Images:      feedImages(raw.Images),
			URL:         fetch.Join(siteURL, productPathFragment+raw.Handle),
		}
		if len(raw.Variants) > 0 {
			first := raw.Variants[0]
			product.Price = string(first.Price)
			if first.CompareAtPrice != nil {
				product.CompareAtPrice = string(*first.CompareAtPrice)
			}
			available := first.Available
			product.Available = &available
		}
		products = append(products, product)
	}
	return products, nil
}

func feedImages(raw []json.RawMessage) []string {
	images := []string{}
	for _, entry := range raw {
		var withSrc struct {
			Src string `json:"src"`
		}
		if err := json.Unmarshal(entry, &withSrc); err == nil && withSrc.Src != "" {
			images = append(images, withSrc.Src)
			continue
		}
		var plain string
		if err := json.Unmarshal(entry, &plain); err == nil && plain != "" {
			images = append(images, plain)
		}
	}
	return images
}

// HeroProductLinks collects homepage anchors pointing at individual
// product pages, resolved against the site root, in document order.
func HeroProductLinks(doc *goquery.Document, siteURL string) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		if strings.Contains(href, productPathFragment) {
			links = append(links, fetch.Resolve(siteURL, href))
		}
	})
	return links
}

// ParseProductPage extracts a minimal hero record from one product
// page: first h1 as title, first price-classed element as price, and
// storefront CDN images capped at three.
func ParseProductPage(doc *goquery.Document, productURL string) entity.Product {
	product := entity.Product{URL: productURL}
	product.Title = CleanText(doc.Find("h1").First().Text())

	price := doc.Find("span, div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return classContainsAny(sel, []string{"price"})
	}).First()
	if price.Length() > 0 {
		raw := price.Text()
		if token := ExtractPrice(raw); token != "" {
			product.Price = token
		} else {
			product.Price = CleanText(raw)
		}
	}

	images := []string{}
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := img.AttrOr("src", "")
		if strings.Contains(strings.ToLower(src), "product") || strings.Contains(src, "cdn.shopify") {
			images = append(images, src)
		}
		return len(images) < maxHeroImages
	})
	product.Images = images

	return product
}
