package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"silver-advisor/internal/logger"
)

// Client is a small HTTP client with default headers and retry
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	retry      *RetryConfig
}

// ClientOption configures the API client
type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader sets a default header for all requests
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetry sets the retry policy used by GET
func WithRetry(cfg *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retry = cfg
	}
}

func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
		retry: DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// StatusError is returned for responses with status >= 400
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// do executes a single GET
func (c *Client) do(ctx context.Context, url string) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	logger.Debug(ctx, "HTTP Request", "method", http.MethodGet, "url", url)

	startTime := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug(ctx, "HTTP Response",
		"url", url,
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(startTime).Milliseconds(),
		"bodySize", len(body))

	if httpResp.StatusCode >= 400 {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: snippet}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

// GET performs a GET request, retrying transient failures
func (c *Client) GET(ctx context.Context, url string) (*Response, error) {
	cfg := c.retry
	if cfg == nil || cfg.MaxAttempts < 1 {
		return c.do(ctx, url)
	}

	var lastErr error
	waitTime := cfg.InitialWait

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		resp, err := c.do(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err) || attempt == cfg.MaxAttempts {
			break
		}

		logger.Warn(ctx, "Request failed, retrying", "url", url, "attempt", attempt, "error", err, "wait", waitTime)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTime):
		}
		waitTime *= 2
		if waitTime > cfg.MaxWait {
			waitTime = cfg.MaxWait
		}
	}

	return nil, lastErr
}

// retryable excludes client errors, which will not change on retry
func retryable(err error) bool {
	if se, ok := err.(*StatusError); ok {
		return se.StatusCode >= 500 || se.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// ParseJSON parses the response body as JSON into v
func (r *Response) ParseJSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

func (r *Response) String() string {
	return string(r.Body)
}

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     5 * time.Second,
	}
}
