// Package search performs hashtag searches against the Twitter v1.1 API.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 32 << 20

// Fetcher performs an uncached request.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params map[string]any) (json.RawMessage, error)
}

// APIError is a non-2xx response from the search API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search api returned %d: %s", e.StatusCode, e.Body)
}

// Client is a Fetcher backed by an authorized HTTP client.
type Client struct {
	http *http.Client
	log  zerolog.Logger
}

// NewClient wraps an HTTP client, typically one from NewHTTPClient.
func NewClient(hc *http.Client, log zerolog.Logger) *Client {
	return &Client{http: hc, log: log}
}

// Fetch issues a GET to endpoint with params as the query string and returns
// the raw JSON body.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]any) (json.RawMessage, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("url", u.String()).Msg("search request")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{StatusCode: res.StatusCode, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, errors.New("search response is not valid JSON")
	}

	c.log.Debug().Int("status", res.StatusCode).Int("bytes", len(body)).Msg("search response")
	return json.RawMessage(body), nil
}
