package entity

import "time"

// Most of the storefronts we profile operate out of India, so scrape
// timestamps are pinned to IST rather than server-local time.
var istZone = time.FixedZone("IST", 5*60*60+30*60)

// Product represents a single catalog or hero product. Every field is
// optional: a product scraped from a bare page may carry only a title.
type Product struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Handle         string   `json:"handle,omitempty"`
	Description    string   `json:"description,omitempty"`
	Vendor         string   `json:"vendor,omitempty"`
	ProductType    string   `json:"product_type,omitempty"`
	Price          string   `json:"price,omitempty"`
	CompareAtPrice string   `json:"compare_at_price,omitempty"`
	Available      *bool    `json:"available,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Images         []string `json:"images,omitempty"`
	URL            string   `json:"url,omitempty"`
}

// FAQ is a question/answer pair recovered from a help or FAQ page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// SocialHandle records a social profile link found on the storefront.
// Handle is empty when the platform domain matched but the username
// could not be pulled out of the URL path.
type SocialHandle struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Handle   string `json:"handle,omitempty"`
}

// ContactInfo holds e-mail addresses and phone numbers scraped from
// contact-like pages. Address is reserved; no current heuristic fills it.
type ContactInfo struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`
	Address      string   `json:"address,omitempty"`
}

// BrandProfile is the aggregate built up by one scrape run. Extractors
// populate disjoint field groups; once returned to the caller the
// profile is treated as immutable.
type BrandProfile struct {
	WebsiteURL                string            `json:"website_url"`
	BrandName                 string            `json:"brand_name,omitempty"`
	BrandDescription          string            `json:"brand_description,omitempty"`
	ProductCatalog            []Product         `json:"product_catalog"`
	HeroProducts              []Product         `json:"hero_products"`
	PrivacyPolicyURL          string            `json:"privacy_policy_url,omitempty"`
	PrivacyPolicyContent      string            `json:"privacy_policy_content,omitempty"`
	ReturnRefundPolicyURL     string            `json:"return_refund_policy_url,omitempty"`
	ReturnRefundPolicyContent string            `json:"return_refund_policy_content,omitempty"`
	FAQs                      []FAQ             `json:"faqs"`
	SocialHandles             []SocialHandle    `json:"social_handles"`
	ContactInfo               *ContactInfo      `json:"contact_info,omitempty"`
	ImportantLinks            map[string]string `json:"important_links"`
	ScrapedAt                 time.Time         `json:"scraped_at"`
}

// NewBrandProfile returns a profile with every collection initialized so
// extractors and formatters never have to nil-check list fields.
func NewBrandProfile(websiteURL string) *BrandProfile {
	return &BrandProfile{
		WebsiteURL:     websiteURL,
		ProductCatalog: []Product{},
		HeroProducts:   []Product{},
		FAQs:           []FAQ{},
		SocialHandles:  []SocialHandle{},
		ImportantLinks: map[string]string{},
		ScrapedAt:      time.Now().In(istZone),
	}
}
