package sanctum

import (
	"net/http"
	"time"
)

const (
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "Sanctum-Go (https://gitlab.com/lightning-bot/sanctum-go)"
	// DefaultTimeout is the overall timeout applied to the session's HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient  *http.Client
	timeout     time.Duration
	userAgent   string
	codec       Codec
	concurrency int
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		codec:       DefaultCodec(),
		concurrency: DefaultConcurrency,
	}
}

// WithHTTPClient replaces the session's HTTP client. The client is used as
// is; WithTimeout does not modify it.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithCodec sets the encoder used for request bodies.
func WithCodec(codec Codec) Option {
	return func(o *clientOptions) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// WithConcurrency sets how many requests DeleteInfractions and DeleteTimers
// keep in flight.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
