package api

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Transport performs a single logical API round trip. The two implementations
// differ only in scheduling policy: PooledTransport keeps a shared connection
// pool alive for the life of the process and retries server errors,
// SessionTransport scopes connections to an explicit acquire/release bracket
// and never retries.
type Transport interface {
	// RoundTrip sends the request and returns the response. Requests with a
	// body must have GetBody set so implementations can re-send them.
	RoundTrip(req *http.Request) (*http.Response, error)

	// Close releases any connections held by the transport.
	Close() error
}

// PooledTransport sends requests through a shared, connection-pooling
// http.Client and retries requests that fail at the transport level or
// return a retryable status code.
type PooledTransport struct {
	client *http.Client
	retry  *RetryConfig
	logger zerolog.Logger
}

// NewPooledTransport creates a pooled transport. A nil httpClient gets a
// default client with the given timeout; a nil retry gets DefaultRetryConfig.
func NewPooledTransport(timeout time.Duration, retry *RetryConfig, httpClient *http.Client, logger zerolog.Logger) *PooledTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if retry == nil {
		retry = DefaultRetryConfig()
	}
	return &PooledTransport{
		client: httpClient,
		retry:  retry,
		logger: logger,
	}
}

// RoundTrip sends the request, retrying on transport failures and retryable
// status codes. When retries are exhausted the last response (or last
// transport error) is returned so the caller can surface the error body.
func (t *PooledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var lastErr error

	for attempt := 0; ; attempt++ {
		attemptReq := req
		if attempt > 0 {
			attemptReq = req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				attemptReq.Body = body
			}
		}

		resp, lastErr = t.client.Do(attemptReq)
		if lastErr == nil && !t.retry.RetryableOn(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= t.retry.MaxRetries {
			return resp, lastErr
		}

		if lastErr != nil {
			t.logger.Debug().
				Err(lastErr).
				Int("attempt", attempt+1).
				Msg("retrying after transport failure")
		} else {
			t.logger.Debug().
				Int("status", resp.StatusCode).
				Int("attempt", attempt+1).
				Msg("retrying after server error")
			// Drain so the connection can be reused.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		if err := t.retry.Wait(req.Context(), attempt); err != nil {
			return nil, err
		}
	}
}

// Close drops idle connections from the pool.
func (t *PooledTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

// SessionTransport holds an http.Client that is created lazily on first use
// and released by Close. Requests are never retried. After Close the next
// round trip establishes a fresh session.
type SessionTransport struct {
	mu      sync.Mutex
	client  *http.Client
	custom  *http.Client
	timeout time.Duration
}

// NewSessionTransport creates a session-scoped transport. A non-nil
// httpClient is used as the session instead of a lazily created one.
func NewSessionTransport(timeout time.Duration, httpClient *http.Client) *SessionTransport {
	return &SessionTransport{
		custom:  httpClient,
		timeout: timeout,
	}
}

// RoundTrip sends the request on the current session, creating one if needed.
func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.session().Do(req)
}

func (t *SessionTransport) session() *http.Client {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client == nil {
		if t.custom != nil {
			t.client = t.custom
		} else {
			t.client = &http.Client{Timeout: t.timeout}
		}
	}
	return t.client
}

// Close releases the session. Idle connections are dropped and the next
// request creates a new session.
func (t *SessionTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client != nil {
		t.client.CloseIdleConnections()
		t.client = nil
	}
	return nil
}
