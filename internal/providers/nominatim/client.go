package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Da+Nang%2C+Vietnam&format=json&limit=1&countrycodes=vn
const (
	baseURL = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
}

// NewClient creates a Nominatim search client. Nominatim's usage policy
// requires a client-identifying User-Agent on every request.
func NewClient(userAgent, countryCodes string) *Client {
	return &Client{
		httpClient:   &http.Client{},
		baseURL:      baseURL,
		userAgent:    userAgent,
		countryCodes: countryCodes,
	}
}

// Search forward-geocodes a free-text place query, asking for at most one
// result restricted to the configured countries. An empty result slice with a
// nil error means the query resolved to nothing.
func (c *Client) Search(ctx context.Context, query string) ([]SearchAPIResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", c.countryCodes)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []SearchAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return results, nil
}
