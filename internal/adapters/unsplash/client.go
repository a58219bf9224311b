// Package unsplash implements domain.ImageSearcher against the Unsplash
// search API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"photocatalog/internal/domain"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	perPage        = 10
)

// Client calls the Unsplash search API. BaseURL is overridable for tests.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	AccessKey  string
}

// NewClient returns a client authenticated with the given access key.
func NewClient(httpClient *http.Client, accessKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HTTPClient: httpClient,
		BaseURL:    defaultBaseURL,
		AccessKey:  accessKey,
	}
}

var _ domain.ImageSearcher = (*Client)(nil)

// searchResponse is the subset of the Unsplash /search/photos response we use.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
	} `json:"results"`
}

func (c *Client) Search(ctx context.Context, query string) ([]domain.ImageResult, error) {
	if c.AccessKey == "" {
		return nil, fmt.Errorf("unsplash access key is not configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	endpoint := fmt.Sprintf("%s/search/photos?%s", c.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from unsplash: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash api returned status: %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode unsplash response: %w", err)
	}

	results := make([]domain.ImageResult, 0, len(data.Results))
	for _, r := range data.Results {
		results = append(results, domain.ImageResult{
			ImageURL:       r.URLs.Regular,
			Description:    r.Description,
			AltDescription: r.AltDescription,
		})
	}
	return results, nil
}
