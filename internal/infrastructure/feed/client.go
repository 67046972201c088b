// Package feed fetches the doctor directory from its upstream JSON endpoint.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"healthhub-directory/internal/domain/entity"
)

// ErrMalformedFeed is returned when the body is not a JSON array of doctors.
var ErrMalformedFeed = errors.New("malformed directory feed")

// Client retrieves the complete doctor list in one request.
type Client interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
}

// HTTPClient is a Client backed by a plain GET. It sends no auth, paging or
// content negotiation.
type HTTPClient struct {
	sourceURL  string
	httpClient *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds the request. Zero means no client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

func NewHTTPClient(sourceURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		sourceURL:  sourceURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) SourceURL() string {
	return c.sourceURL
}

// FetchDoctors issues the GET and decodes the whole body. A partially decodable body
// is a failure; there is no partial result.
func (c *HTTPClient) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, c.sourceURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(body, &doctors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if doctors == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedFeed)
	}
	return doctors, nil
}
