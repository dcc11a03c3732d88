// ABOUTME: Udemy course marketplace client with OAuth client-credentials auth
// ABOUTME: Degrades silently on any failure so course results never fail the request

package udemy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"skillscope-api/core/interfaces"
	"skillscope-api/pkg/config"
)

const (
	defaultBaseURL = "https://www.udemy.com/api-2.0"

	// maxPageSize is the course search page-size ceiling
	maxPageSize = 10

	tokenCacheKey = "udemy:access_token"

	// tokenTTLSlack is subtracted from the token expiry so a cached
	// token is never used right at its deadline
	tokenTTLSlack = time.Minute

	// defaultTokenTTL is used when the token endpoint reports no expiry
	defaultTokenTTL = 30 * time.Minute
)

// Client calls the Udemy courses API. Every method degrades to an empty
// contribution on failure; this provider is optional by design.
type Client struct {
	deps    interfaces.Dependencies
	oauth   *clientcredentials.Config
	baseURL string

	// tokenClient is handed to the oauth2 package for the token
	// exchange, carrying the outbound timeout
	tokenClient *http.Client
}

// NewClient creates a Udemy client. When either credential is absent the
// client is unconfigured and contributes nothing.
func NewClient(deps interfaces.Dependencies, cfg config.ProviderConfig, timeout time.Duration) *Client {
	c := &Client{
		deps:        deps,
		baseURL:     defaultBaseURL,
		tokenClient: &http.Client{Timeout: timeout},
	}

	if cfg.HasUdemyCredentials() {
		c.oauth = &clientcredentials.Config{
			ClientID:     cfg.UdemyClientID,
			ClientSecret: cfg.UdemyClientSecret,
			TokenURL:     defaultBaseURL + "/oauth2/token/",
			AuthStyle:    oauth2.AuthStyleInParams,
		}
	}
	return c
}

// Configured reports whether both credentials are present
func (c *Client) Configured() bool {
	return c.oauth != nil
}

// Search returns up to min(max, 10) courses matching the query. Failures
// are logged and produce a nil slice, never an error.
func (c *Client) Search(ctx context.Context, query string, max int) []Course {
	if !c.Configured() {
		return nil
	}

	token := c.token(ctx)
	if token == "" {
		return nil
	}

	limit := max
	if limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{}
	params.Set("search", query)
	params.Set("page_size", strconv.Itoa(limit))

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Accept", "application/json")

	resp, err := c.deps.HTTPClient.Get(ctx, c.baseURL+"/courses/?"+params.Encode(), headers)
	if err != nil {
		c.warn("Udemy search failed", err.Error())
		return nil
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		c.warn("Udemy search read failed", err.Error())
		return nil
	}

	if resp.StatusCode() != 200 {
		c.warn("Udemy search returned non-success status", strconv.Itoa(resp.StatusCode()))
		return nil
	}

	var parsed struct {
		Results []Course `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.warn("Udemy search response malformed", err.Error())
		return nil
	}
	return parsed.Results
}

// token returns a bearer token, from cache when possible, otherwise via
// a client-credentials exchange. Returns empty string on any failure.
func (c *Client) token(ctx context.Context) string {
	if c.deps.Cache != nil {
		if cached, err := c.deps.Cache.Get(ctx, tokenCacheKey); err == nil && len(cached) > 0 {
			return string(cached)
		}
	}

	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, c.tokenClient)
	tok, err := c.oauth.Token(exchangeCtx)
	if err != nil {
		c.warn("Udemy token acquisition failed", err.Error())
		return ""
	}

	ttl := defaultTokenTTL
	if !tok.Expiry.IsZero() {
		ttl = time.Until(tok.Expiry) - tokenTTLSlack
	}
	if c.deps.Cache != nil && ttl > 0 {
		_ = c.deps.Cache.Set(ctx, tokenCacheKey, []byte(tok.AccessToken), ttl)
	}
	return tok.AccessToken
}

func (c *Client) warn(msg, detail string) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, map[string]interface{}{
			"provider": "udemy",
			"detail":   detail,
		})
	}
}

// Course is the raw item shape returned by the course search endpoint
type Course struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Headline       string `json:"headline"`
	URL            string `json:"url"`
	NumSubscribers int64  `json:"num_subscribers"`
	Image480x270   string `json:"image_480x270"`
	Image125H      string `json:"image_125_H"`
	Created        string `json:"created"`
}

// BestImage returns the preferred thumbnail, falling back from the large
// rendition to the small one, else empty.
func (c Course) BestImage() string {
	if c.Image480x270 != "" {
		return c.Image480x270
	}
	return c.Image125H
}
