package masedb

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/masedb/client-go/internal/api"
)

// Client is the MaseDB API client. It is stateless per call: every method
// maps to a single HTTP request against the configured base URL, and all
// returned entities are immutable server snapshots. A Client is safe for
// concurrent use; the only shared resource is the transport's connection
// session.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new MaseDB client with the given API key. The key is sent in
// the X-API-Key header on every request. Configuration is immutable after
// New returns.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		transport: TransportPooled,
		timeout:   defaultTimeout,
		retries:   -1,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// buildAPIClient creates and configures the HTTP core from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	var transport api.Transport
	switch cfg.transport {
	case TransportSession:
		transport = api.NewSessionTransport(cfg.timeout, cfg.httpClient)
	default:
		retry := api.DefaultRetryConfig()
		if cfg.retries >= 0 {
			retry.MaxRetries = cfg.retries
		}
		if len(cfg.retryOn) > 0 {
			codes := make(map[int]struct{}, len(cfg.retryOn))
			for _, code := range cfg.retryOn {
				codes[code] = struct{}{}
			}
			retry.RetryableOn = func(statusCode int) bool {
				_, ok := codes[statusCode]
				return ok
			}
		}
		transport = api.NewPooledTransport(cfg.timeout, retry, cfg.httpClient, cfg.logger)
	}

	return api.New(apiKey,
		api.WithBaseURL(cfg.baseURL),
		api.WithTransport(transport),
		api.WithLogger(cfg.logger),
	)
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close releases the client's connection session. Close is idempotent;
// methods called after Close return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.api.Close()
}
