// Package newsapi implements the HTTP news-search collaborator.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Provider is anything that can turn a keyword into articles. Both the
// API client here and the RSS fallback in internal/feed satisfy it.
type Provider interface {
	Search(ctx context.Context, keyword string) ([]Article, error)
}

// Client queries a NewsAPI-style "everything" endpoint.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	client   *http.Client
}

type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// NewClient builds a search client. timeout bounds the whole request;
// a timeout surfaces to callers as an ordinary search failure.
func NewClient(baseURL, apiKey string, pageSize int, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

// Search fetches articles matching keyword. The keyword is passed as-is;
// url.Values handles transport escaping, nothing more. A non-200 response
// yields an error whose message contains the status code.
func (c *Client) Search(ctx context.Context, keyword string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("apiKey", c.apiKey)
	if c.pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(c.pageSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search API returned status %d: %s", resp.StatusCode, string(b))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return r.Articles, nil
}
