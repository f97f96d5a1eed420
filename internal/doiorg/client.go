// Package doiorg resolves DOIs into work records using the doi.org
// content negotiation endpoint.
package doiorg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DOI resolver endpoint.
	BaseURL = "https://doi.org"

	// cslJSON is the content type for Citation Style Language JSON.
	cslJSON = "application/vnd.citationstyles.csl+json"

	// RateLimit keeps us well inside the resolver's tolerance.
	RateLimit = 5.0
)

// ErrNotFound is returned when the resolver does not know the DOI.
var ErrNotFound = errors.New("DOI not found")

// Client is a rate-limited HTTP client for the DOI resolver.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailto sets a contact address sent in the User-Agent, which the
// resolver operators ask polite clients to provide.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// NewClient creates a new DOI resolver client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a DOI into a raw work record ready for rendering or
// storage.
func (c *Client) Lookup(ctx context.Context, doi string) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	doi = strings.TrimPrefix(strings.TrimSpace(doi), "doi:")
	url := c.baseURL + "/" + doi

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", cslJSON)
	agent := "citebuild/1.0"
	if c.mailto != "" {
		agent += " (mailto:" + c.mailto + ")"
	}
	req.Header.Set("User-Agent", agent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolving DOI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, doi)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("resolver returned HTTP %d for %s", resp.StatusCode, doi)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var meta cslRecord
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("parsing CSL JSON: %w", err)
	}

	record := meta.toRecord()
	if record["title"] == "" {
		return nil, fmt.Errorf("resolver returned no title for %s", doi)
	}
	return record, nil
}
