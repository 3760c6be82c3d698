// Package unsplash implements the photo-search collaborator against the
// Unsplash search API.
package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/domain"
)

// ErrNotConfigured indicates the client was built without an access key.
var ErrNotConfigured = errors.New("unsplash: access key not configured")

const defaultBaseURL = "https://api.unsplash.com"

// Client calls the Unsplash photo-search endpoint.
type Client struct {
	httpClient *http.Client
	accessKey  string
	baseURL    string
}

var _ domain.PhotoSearcher = (*Client)(nil)

// New creates a client for the live API. An empty access key yields a
// client whose searches fail with ErrNotConfigured, which callers treat
// as "use fallback data".
func New(accessKey string) *Client {
	return NewWithBaseURL(accessKey, defaultBaseURL, &http.Client{Timeout: 10 * time.Second})
}

// NewWithBaseURL creates a client against a custom endpoint, for tests
// and proxies.
func NewWithBaseURL(accessKey, baseURL string, httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient, accessKey: accessKey, baseURL: baseURL}
}

// SearchPhotos returns up to perPage photos matching the query.
func (c *Client) SearchPhotos(ctx context.Context, query string, perPage int) ([]domain.TrendPhoto, error) {
	if c.accessKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orientation", "portrait")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash: search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: search returned %s", resp.Status)
	}

	var body struct {
		Results []struct {
			Description    string `json:"description"`
			AltDescription string `json:"alt_description"`
			URLs           struct {
				Regular string `json:"regular"`
			} `json:"urls"`
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unsplash: decode response: %w", err)
	}

	photos := make([]domain.TrendPhoto, 0, len(body.Results))
	for _, r := range body.Results {
		desc := r.Description
		if desc == "" {
			desc = r.AltDescription
		}
		photos = append(photos, domain.TrendPhoto{
			URL:         r.URLs.Regular,
			Description: desc,
			Author:      r.User.Name,
		})
	}
	return photos, nil
}
