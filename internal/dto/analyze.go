package dto

// AnalyzeRequest is the payload accepted by POST /api/analyze.
type AnalyzeRequest struct {
	WebsiteURL   string `json:"website_url"`
	ForceRefresh bool   `json:"force_refresh,omitempty"`
}

// ValidateURLRequest is the payload accepted by POST /api/validate-url.
type ValidateURLRequest struct {
	WebsiteURL string `json:"website_url"`
}
