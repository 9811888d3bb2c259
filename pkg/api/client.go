// Package api implements the HTTP client for the granaboard REST API.
//
// The client only deals with transport concerns: JSON encoding and decoding,
// query parameters, request tracing and the translation of HTTP failures
// into *Error values. All domain logic lives in the stores built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client talks to the granaboard backend.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger replaces the default logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New returns a Client for the API at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	c := &Client{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log.Logger,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

// Get requests the resource list or detail at path and decodes the response
// into target. Query parameters may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, target any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, target)
}

// Post creates a resource at path and decodes the response into target.
// A nil target discards the response body.
func (c *Client) Post(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, target)
}

// Patch partially updates the resource at path.
func (c *Client) Patch(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, target)
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	rel := &url.URL{Path: strings.TrimLeft(path, "/")}
	u := c.base.ResolveReference(rel)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().
		Str("request-id", requestID).
		Str("method", method).
		Str("url", u.String()).
		Msg("API request")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("request-id", requestID).Err(err).Msg("API request failed")
		return fmt.Errorf("%s %s: %w", method, u.Path, err)
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("request-id", requestID).
		Int("status", res.StatusCode).
		Msg("API response")

	if res.StatusCode >= http.StatusBadRequest {
		return newError(res)
	}

	if target == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response from %s: %w", u.Path, err)
	}

	return nil
}
