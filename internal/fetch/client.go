// Package fetch provides the HTTP session shared by one scrape run. It
// carries a browser-like header set, a per-call timeout, and bounded
// retries with exponential backoff for rate-limited or flaky targets.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
	retryBaseWait  = 1 * time.Second
	retryMaxWait   = 8 * time.Second
)

// Storefront CDNs and bot filters are friendlier to requests that look
// like a regular browser session.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Upgrade-Insecure-Requests": "1",
}

// Page is the result of a successful fetch.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Client wraps two resty sessions over one connection pool: a retrying
// session for the extraction helpers and a one-shot session for access
// verification and the validation oracle, which must not retry.
type Client struct {
	session *resty.Client
	oneShot *resty.Client
}

// Option configures optional client behavior.
type Option func(*Client)

// WithTransport overrides the underlying transport, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.session.SetTransport(rt)
		c.oneShot.SetTransport(rt)
	}
}

// WithRetryWait overrides the backoff bounds so retry tests do not sleep.
func WithRetryWait(base, max time.Duration) Option {
	return func(c *Client) {
		c.session.SetRetryWaitTime(base)
		c.session.SetRetryMaxWaitTime(max)
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.session.SetTimeout(d)
		c.oneShot.SetTimeout(d)
	}
}

// New builds a scrape session. Retries apply to transport errors and
// HTTP 429 only; any other non-200 status is reported to the caller
// without another attempt.
func New(opts ...Option) *Client {
	session := resty.New().
		SetTimeout(defaultTimeout).
		SetHeaders(browserHeaders).
		SetRetryCount(maxRetries).
		SetRetryWaitTime(retryBaseWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests
		})

	oneShot := resty.New().
		SetTimeout(defaultTimeout).
		SetHeaders(browserHeaders)

	c := &Client{session: session, oneShot: oneShot}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves a page through the retrying session. A non-200 final
// status yields an error so extraction cascades can move on to their
// next candidate path.
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	resp, err := c.session.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode(), url)
	}
	return &Page{URL: url, StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// FetchJSON retrieves a page and decodes its body into v.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	page, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(page.Body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// Get performs a single request without retries and reports whatever
// status came back. The validation oracle interprets the status itself.
func (c *Client) Get(ctx context.Context, url string) (int, []byte, error) {
	resp, err := c.oneShot.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	return resp.StatusCode(), resp.Body(), nil
}

// Head performs a single HEAD request, following redirects.
func (c *Client) Head(ctx context.Context, url string) (int, error) {
	resp, err := c.oneShot.R().SetContext(ctx).Head(url)
	if err != nil {
		return 0, fmt.Errorf("requesting %s: %w", url, err)
	}
	return resp.StatusCode(), nil
}

// VerifyAccess issues one request to the site root. Storefronts behind
// aggressive bot filters answer 403 yet still serve most pages, so 403
// counts as accessible.
func (c *Client) VerifyAccess(ctx context.Context, url string) error {
	status, _, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusForbidden {
		return fmt.Errorf("site root returned status %d", status)
	}
	return nil
}
