package sanctum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a Sanctum API client. A Client is safe for concurrent use;
// all requests share one HTTP session and its connection pool.
type Client struct {
	apiURL      string
	header      http.Header
	httpClient  *http.Client
	codec       Codec
	concurrency int
	logger      zerolog.Logger
	closed      atomic.Bool
}

// NewClient creates a new Sanctum client. It performs no network I/O.
func NewClient(apiURL, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("%w: API URL is required", ErrInvalidConfig)
	}
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid API URL %q: %v", ErrInvalidConfig, apiURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: API URL %q must be absolute", ErrInvalidConfig, apiURL)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   options.timeout,
		}
	}

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+token)
	header.Set("User-Agent", options.userAgent)
	header.Set("Accept", "application/json")

	return &Client{
		apiURL:      apiURL,
		header:      header,
		httpClient:  httpClient,
		codec:       options.codec,
		concurrency: options.concurrency,
		logger:      logger,
	}, nil
}

// APIURL returns the base URL every request path is appended to.
func (c *Client) APIURL() string {
	return c.apiURL
}

// Close releases the session's pooled connections. Requests issued after
// Close, and any further Close call, return ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	c.httpClient.CloseIdleConnections()
	return nil
}

// Request sends method to apiURL+path and returns the decoded JSON body.
//
// params, when non-empty, are sent as the query string. data, when non-nil, is
// encoded with the client's codec and sent with Content-Type application/json;
// otherwise no body is sent. Any status outside 2xx is returned as an
// *HTTPError.
func (c *Client) Request(ctx context.Context, method, path string, params url.Values, data any) (any, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	requestURL := c.apiURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body io.Reader
	hasBody := !isNil(data)
	if hasBody {
		payload, err := c.codec.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.header.Clone()
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Sanctum API request")

	result, decodeErr := decodeBody(raw)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
		}
		return result, nil
	}

	if decodeErr != nil {
		result = string(raw)
	}
	return nil, &HTTPError{StatusCode: resp.StatusCode, Data: result}
}

// decodeBody parses a JSON response body, keeping numbers as json.Number so
// snowflake IDs survive without float rounding. An empty body decodes to nil.
func decodeBody(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

// isNil reports whether v is nil or a nil map, slice or pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}
