// Package net provides HTTP client functionality with retry, timeout, and circuit breaker patterns
// for fetching stellar.toml files and talking to other Stellar services.
//
// The Client struct offers configurable timeout, retry attempts, and exponential backoff.
// It includes a simple circuit breaker to prevent cascading failures when a host is down.
//
// Example usage:
//
//	client := net.NewClient(
//	    net.WithTimeout(20*time.Second),
//	    net.WithMaxRetries(5),
//	    net.WithRetryBackoff(2*time.Second),
//	)
//	resp, err := client.Get(ctx, "https://example.com/.well-known/stellar.toml")
package net

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/marwen-abid/stellartoml-go/errors"
)

// Default configuration values
const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 3
	defaultBackoff      = 1 * time.Second
	defaultFailureLimit = 5
	defaultResetTimeout = 60 * time.Second
	defaultUserAgent    = "stellartoml-go"
)

// Client is an HTTP client with retry, timeout, and circuit breaker capabilities.
type Client struct {
	httpClient     *http.Client
	maxRetries     int
	retryBackoff   time.Duration
	userAgent      string
	logger         *slog.Logger
	circuitBreaker *circuitBreaker
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout (default: 30s).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxRetries sets the maximum number of retry attempts (default: 3).
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryBackoff sets the base duration for exponential backoff (default: 1s).
func WithRetryBackoff(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryBackoff = d
	}
}

// WithCircuitBreaker sets how many consecutive failed requests open the
// circuit and how long it stays open (default: 5, 60s).
func WithCircuitBreaker(failureLimit int, resetTimeout time.Duration) ClientOption {
	return func(c *Client) {
		c.circuitBreaker.failureLimit = failureLimit
		c.circuitBreaker.resetTimeout = resetTimeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used to report retries. A nil logger is ignored.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new HTTP client with the given options.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultBackoff,
		userAgent:    defaultUserAgent,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		circuitBreaker: &circuitBreaker{
			failureLimit: defaultFailureLimit,
			resetTimeout: defaultResetTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response wraps an HTTP response with convenience methods.
type Response struct {
	*http.Response
}

// Get performs an HTTP GET request with retry and circuit breaker logic.
// 4xx responses are returned to the caller without retrying; 5xx responses
// and transport errors are retried.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.NETWORK_ERROR, "failed to create GET request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return c.do(req)
}

// do executes the HTTP request with retry logic and circuit breaker.
func (c *Client) do(req *http.Request) (*Response, error) {
	if !c.circuitBreaker.allowRequest() {
		return nil, errors.New(errors.NETWORK_ERROR, "circuit breaker is open", nil).
			With("host", req.URL.Host)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying request",
				"url", req.URL.String(),
				"attempt", attempt,
				"error", lastErr,
			)
			if err := c.backoff(req.Context(), attempt-1); err != nil {
				return nil, errors.New(errors.NETWORK_ERROR, "request cancelled", err)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := req.Context().Err(); ctxErr != nil {
				return nil, errors.New(errors.NETWORK_ERROR, "request cancelled", ctxErr)
			}
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %s", resp.Status)
			continue
		}

		c.circuitBreaker.recordSuccess()
		return &Response{resp}, nil
	}

	c.circuitBreaker.recordFailure()
	return nil, errors.New(
		errors.NETWORK_ERROR,
		fmt.Sprintf("request failed after %d attempts", c.maxRetries+1),
		lastErr,
	).With("url", req.URL.String())
}

// backoff waits retryBackoff * 2^attempt, or until ctx is done.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryBackoff * (1 << uint(attempt)))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// circuitBreaker implements a simple circuit breaker pattern.
type circuitBreaker struct {
	mu           sync.RWMutex
	failures     int
	lastFailTime time.Time
	failureLimit int
	resetTimeout time.Duration
	state        circuitState
}

type circuitState int

const (
	stateClosed circuitState = iota
	stateOpen
)

// allowRequest checks if the circuit breaker allows the request to proceed.
func (cb *circuitBreaker) allowRequest() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.state == stateClosed {
		return true
	}

	// Half-open once the reset timeout has elapsed.
	return time.Since(cb.lastFailTime) > cb.resetTimeout
}

// recordSuccess records a successful request and closes the circuit.
func (cb *circuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.state = stateClosed
}

// recordFailure records a failed request and may open the circuit.
func (cb *circuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.lastFailTime = time.Now()

	if cb.failures >= cb.failureLimit {
		cb.state = stateOpen
	}
}
