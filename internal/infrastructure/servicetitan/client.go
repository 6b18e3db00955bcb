package servicetitan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotFound is returned by point lookups when the upstream record does
// not exist. Callers decide whether that is an error; for directory
// lookups it is not.
var ErrNotFound = errors.New("servicetitan: not found")

const (
	defaultBaseURL  = "https://api.servicetitan.io"
	defaultTokenURL = "https://auth.servicetitan.io/connect/token"

	defaultPageSize  = 50
	defaultPageDelay = 300 * time.Millisecond

	// Tokens are refreshed this long before they actually expire.
	tokenEarlyRefresh = 5 * time.Minute

	requestTimeout = 30 * time.Second
	maxAttempts    = 3
	baseBackoff    = 500 * time.Millisecond
)

// Config holds the ServiceTitan API credentials and tuning knobs.
type Config struct {
	BaseURL      string
	TokenURL     string
	TenantID     string
	AppKey       string
	ClientID     string
	ClientSecret string

	// PageSize for every paginated endpoint.
	PageSize int
	// PageDelay is the courtesy delay between page requests. It is not a
	// server-enforced contract; 429 handling exists on top of it.
	PageDelay time.Duration
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.TokenURL == "" {
		c.TokenURL = defaultTokenURL
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.PageDelay <= 0 {
		c.PageDelay = defaultPageDelay
	}
}

// Client is the ServiceTitan REST client. Authentication is an OAuth2
// client-credentials grant; the token source caches the token in memory
// and refreshes it ~5 minutes ahead of expiry.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(ctx context.Context, cfg Config) *Client {
	cfg.applyDefaults()

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	source := oauth2.ReuseTokenSourceWithExpiry(nil, cc.TokenSource(ctx), tokenEarlyRefresh)

	httpClient := oauth2.NewClient(ctx, source)
	httpClient.Timeout = requestTimeout

	return &Client{cfg: cfg, http: httpClient}
}

// getJSON performs one authenticated GET with retry-with-backoff on 429
// and 5xx responses. Other non-2xx statuses fail immediately; 404 maps to
// ErrNotFound.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			wait := baseBackoff << (attempt - 1)
			log.Printf("[servicetitan][client] retrying %s in %s (attempt %d/%d): %v", path, wait, attempt+1, maxAttempts, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.Header.Set("ST-App-Key", c.cfg.AppKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		done, err := c.handleResponse(resp, path, out)
		if done {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// handleResponse returns done=false when the status is retryable.
func (c *Client) handleResponse(resp *http.Response, path string, out any) (done bool, err error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusNotFound:
		return true, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return false, fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, bodySnippet(resp.Body))
	default:
		return true, fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, bodySnippet(resp.Body))
	}
}

func bodySnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}

// pause is the inter-page courtesy delay.
func (c *Client) pause(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.cfg.PageDelay):
		return nil
	}
}

func (c *Client) tenantPath(api, resource string) string {
	return fmt.Sprintf("/%s/v2/tenant/%s/%s", api, c.cfg.TenantID, resource)
}
