package masedb

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TransportMode selects how the client schedules HTTP round trips.
type TransportMode string

const (
	// TransportPooled reuses a shared connection pool across calls and
	// retries requests on server errors (500, 502, 503, 504).
	TransportPooled TransportMode = "pooled"
	// TransportSession scopes the connection session to the client's
	// lifetime: it is created lazily on the first call and released by
	// Close. Requests are never retried.
	TransportSession TransportMode = "session"
)

const (
	defaultBaseURL = "https://masedb.maseai.online"
	defaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client. Configuration is
// immutable after New returns.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	transport  TransportMode
	timeout    time.Duration
	retries    int // -1 means default
	retryOn    []int
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client. The client's own timeout
// replaces the default.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTransportMode sets the transport mode. Default: TransportPooled.
func WithTransportMode(mode TransportMode) Option {
	return func(c *clientConfig) {
		c.transport = mode
	}
}

// WithTimeout sets the request timeout applied uniformly to every call.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for the pooled transport.
// Zero disables retries. Ignored in session mode. Default: 3.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry in the pooled
// transport. Default: [500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithLogger sets the logger for request/response debug logging.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
