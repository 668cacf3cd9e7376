package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production MaseDB endpoint.
const DefaultBaseURL = "https://masedb.maseai.online"

// DefaultTimeout is the request timeout applied when none is configured.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP API core shared by all execution modes. It builds
// authenticated requests, delegates the round trip to a Transport and decodes
// responses. It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	transport Transport
	logger    zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTransport sets the transport used for round trips.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithLogger sets the logger for request/response debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewPooledTransport(DefaultTimeout, nil, nil, c.logger)
	}

	return c, nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Do executes one API call. A non-nil body is JSON-encoded; GET and DELETE
// requests never carry a Content-Type header even when a body is attached
// (the server expects query filters in the body of GET requests). A non-nil
// result receives the decoded response body.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.transport.RoundTrip(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return &NetworkError{Err: err, URL: req.URL.String()}
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, result)
}

// handleResponse reads the full body and maps the response per the API
// contract: 2xx bodies are decoded as JSON, non-2xx bodies become APIErrors.
func (c *Client) handleResponse(resp *http.Response, result any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response body: %w", err), URL: resp.Request.URL.String()}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("body_bytes", len(raw)).
		Msg("received response")

	contentType := resp.Header.Get("Content-Type")
	isJSON := strings.Contains(contentType, "application/json")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(raw) == 0 {
			return nil
		}
		if !isJSON {
			return &ProtocolError{Message: fmt.Sprintf("invalid response format: expected JSON, got %s", contentType)}
		}
		if result == nil {
			result = &json.RawMessage{}
		}
		if err := json.Unmarshal(raw, result); err != nil {
			return &ProtocolError{Message: fmt.Sprintf("invalid JSON response: %v", err)}
		}
		return nil
	}

	message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(raw))
	if len(raw) == 0 {
		message = fmt.Sprintf("HTTP %d: No response body", resp.StatusCode)
	}

	if isJSON {
		var envelope struct {
			Error *struct {
				Code    string         `json:"code"`
				Message string         `json:"message"`
				Details map[string]any `json:"details"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
			code := envelope.Error.Code
			if code == "" {
				code = "UNKNOWN_ERROR"
			}
			errMessage := envelope.Error.Message
			if errMessage == "" {
				errMessage = message
			}
			return &APIError{
				StatusCode: resp.StatusCode,
				Code:       code,
				Message:    errMessage,
				Details:    envelope.Error.Details,
			}
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
