// Package httpclient performs single JSON calls against the Egeria platform
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/stacklok/egeria-client-go/internal/jsonutil"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response size (100MB)
	MaxResponseSize = 100 * 1024 * 1024

	// UserAgent is the user agent string for HTTP requests
	UserAgent = "egeria-client-go/1.0"

	// RequestIDHeader carries a fresh identifier for every call
	RequestIDHeader = "X-Request-ID"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks -source=client.go Client

// Client is an interface for HTTP operations
type Client interface {
	// Do sends body (slimmed of null members) as JSON and returns the response body.
	// A nil body sends no payload.
	Do(ctx context.Context, method, url string, body any, opts ...CallOption) ([]byte, error)
	// Get performs an HTTP GET request and returns the response body without
	// inspecting it, for platform endpoints that do not answer in JSON
	Get(ctx context.Context, url string) ([]byte, error)
}

// CallOption adjusts a single call
type CallOption func(*callOptions)

type callOptions struct {
	timeout time.Duration
}

// WithTimeout bounds a single call, overriding the client timeout for it in
// either direction
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) {
		o.timeout = d
	}
}

// Option configures a DefaultClient
type Option func(*DefaultClient)

// WithToken sets the bearer token sent on every call
func WithToken(token string) Option {
	return func(c *DefaultClient) {
		c.token = token
	}
}

// WithTransport replaces the round tripper of the underlying http.Client
func WithTransport(rt http.RoundTripper) Option {
	return func(c *DefaultClient) {
		if rt != nil {
			c.client.Transport = rt
		}
	}
}

// DefaultClient is the default HTTP client implementation
type DefaultClient struct {
	client  *http.Client
	timeout time.Duration
	token   string
}

// NewDefaultClient creates a new default HTTP client with the specified timeout
// If timeout is 0, uses DefaultTimeout. The timeout is applied as a deadline on
// each call rather than on the http.Client, so WithTimeout can lengthen it.
func NewDefaultClient(timeout time.Duration, opts ...Option) *DefaultClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &DefaultClient{
		client:  &http.Client{},
		timeout: timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs a JSON request and checks both the HTTP status and the
// relatedHTTPCode carried in the response envelope
func (c *DefaultClient) Do(ctx context.Context, method, url string, body any, opts ...CallOption) ([]byte, error) {
	ctx, cancel := c.withDeadline(ctx, opts)
	defer cancel()

	payload, err := jsonutil.Slim(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("Calling Egeria",
		"method", method,
		"url", url,
		"request_id", req.Header.Get(RequestIDHeader),
	)

	status, data, err := c.execute(req)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, NewAPIError(status, url, data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return data, nil
	}
	if !gjson.ValidBytes(data) {
		apiErr := NewAPIError(status, url, data)
		apiErr.ErrorMessage = "invalid JSON in response body"
		return nil, apiErr
	}
	if related := gjson.GetBytes(data, "relatedHTTPCode"); related.Exists() && related.Int() != http.StatusOK {
		return nil, NewAPIError(int(related.Int()), url, data)
	}
	return data, nil
}

// Get performs an HTTP GET request
func (c *DefaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := c.withDeadline(ctx, nil)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	status, data, err := c.execute(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewAPIError(status, url, data)
	}
	return data, nil
}

// withDeadline bounds ctx by the per-call timeout when one is given and by the
// client timeout otherwise
func (c *DefaultClient) withDeadline(ctx context.Context, opts []CallOption) (context.Context, context.CancelFunc) {
	co := &callOptions{timeout: c.timeout}
	for _, opt := range opts {
		opt(co)
	}
	if co.timeout <= 0 {
		co.timeout = c.timeout
	}
	return context.WithTimeout(ctx, co.timeout)
}

func (c *DefaultClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// execute sends the request and reads a size-limited body
func (c *DefaultClient) execute(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, &ConnectionError{URL: req.URL.String(), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Check Content-Length header if available
	if resp.ContentLength > MaxResponseSize {
		return 0, nil, fmt.Errorf("response size %d bytes exceeds maximum allowed size of %d bytes (%.2f MB)",
			resp.ContentLength, MaxResponseSize, float64(MaxResponseSize)/(1024*1024))
	}

	// +1 to detect if limit exceeded
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return 0, nil, &ConnectionError{URL: req.URL.String(), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if int64(len(body)) > MaxResponseSize {
		return 0, nil, fmt.Errorf("response size exceeds maximum allowed size of %d bytes (%.2f MB)",
			MaxResponseSize, float64(MaxResponseSize)/(1024*1024))
	}

	return resp.StatusCode, body, nil
}
