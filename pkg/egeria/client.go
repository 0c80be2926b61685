// Package egeria provides the Client that every domain manager is built on: URL
// construction for view services, the create, get, find and update endpoint
// families, the platform readiness check, and the hand-off of query results to the
// output formatter.
package egeria

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	egeriaotel "github.com/stacklok/egeria-client-go/internal/otel"
	"github.com/stacklok/egeria-client-go/internal/telemetry"
	"github.com/stacklok/egeria-client-go/pkg/httpclient"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// TracerName is the name of the tracer used for client operations
const TracerName = "github.com/stacklok/egeria-client-go/egeria"

// Client calls the view services of one view server. Calls block until the platform
// answers or ctx is done. A Client is meant for one logical caller at a time.
type Client struct {
	cfg       Config
	http      httpclient.Client
	formatter *output.Formatter
	tracer    trace.Tracer
	metrics   *telemetry.ClientMetrics
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient     httpclient.Client
	catalog        *output.Catalog
	catalogManager *output.CatalogManager
	registry       *output.Registry
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	now            func() time.Time
}

// WithHTTPClient replaces the HTTP client. The token and telemetry options do not
// apply to a client supplied this way.
func WithHTTPClient(c httpclient.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithCatalog renders query results with a fixed format catalog
func WithCatalog(c *output.Catalog) Option {
	return func(o *clientOptions) {
		o.catalog = c
	}
}

// WithCatalogManager renders query results with the catalog a manager keeps current
func WithCatalogManager(cm *output.CatalogManager) Option {
	return func(o *clientOptions) {
		o.catalogManager = cm
	}
}

// WithRegistry sets the extractor registry shared with the formatter
func WithRegistry(r *output.Registry) Option {
	return func(o *clientOptions) {
		o.registry = r
	}
}

// WithTracerProvider enables spans for client operations and HTTP calls
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider enables request and result metrics
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *clientOptions) {
		o.meterProvider = mp
	}
}

// WithClock sets the clock used for report timestamps
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		o.now = now
	}
}

// NewClient creates a Client for cfg
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	metrics, err := telemetry.NewClientMetrics(o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create client metrics: %w", err)
	}

	c := &Client{cfg: cfg, http: o.httpClient, metrics: metrics}
	if o.tracerProvider != nil {
		c.tracer = o.tracerProvider.Tracer(TracerName)
	}

	if c.http == nil {
		transport, err := telemetry.NewTransport(nil, o.tracerProvider, o.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP transport: %w", err)
		}
		c.http = httpclient.NewDefaultClient(cfg.Timeout,
			httpclient.WithToken(cfg.Token),
			httpclient.WithTransport(transport),
		)
	}

	formatterOpts := []output.FormatterOption{output.WithFetcher(c)}
	switch {
	case o.catalogManager != nil:
		formatterOpts = append(formatterOpts, output.WithCatalogManager(o.catalogManager))
	case o.catalog != nil:
		formatterOpts = append(formatterOpts, output.WithCatalog(o.catalog))
	}
	if o.registry != nil {
		formatterOpts = append(formatterOpts, output.WithRegistry(o.registry))
	}
	if o.now != nil {
		formatterOpts = append(formatterOpts, output.WithClock(o.now))
	}
	c.formatter, err = output.NewFormatter(formatterOpts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the client configuration
func (c *Client) Config() Config {
	return c.cfg
}

// Registry returns the extractor registry used when formatting query results
func (c *Client) Registry() *output.Registry {
	return c.formatter.Registry()
}

// Formatter returns the output formatter
func (c *Client) Formatter() *output.Formatter {
	return c.formatter
}

// ServiceURL builds {platformURL}/servers/{serverName}/api/open-metadata/{service}/{path}
func (c *Client) ServiceURL(service, path string) string {
	return fmt.Sprintf("%s/servers/%s/api/open-metadata/%s/%s",
		c.cfg.platformURL(), url.PathEscape(c.cfg.ServerName), service, strings.TrimLeft(path, "/"))
}

// RequireGUID fails with an InvalidParameterError when guid is empty
func RequireGUID(name, guid string) error {
	if strings.TrimSpace(guid) == "" {
		return requests.NewInvalidParameterError(name, "a GUID is required")
	}
	return nil
}

// RequireGUIDs checks name, guid pairs in order and reports the first empty guid
func RequireGUIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := RequireGUID(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Path formats an endpoint path, escaping every argument as one path segment
func Path(format string, segments ...string) string {
	args := make([]any, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}

// RequireName fails with an InvalidParameterError when value is empty
func RequireName(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return requests.NewInvalidParameterError(name, "a value is required")
	}
	return nil
}

type callTimeoutKey struct{}

// WithCallTimeout returns a context under which every platform call made through a
// Client, or any manager built on it, is bounded by d instead of Config.Timeout.
// d may be longer than the configured timeout.
func WithCallTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, callTimeoutKey{}, d)
}

// callOptions turns the per-call settings carried by ctx into HTTP call options
func callOptions(ctx context.Context) []httpclient.CallOption {
	if d, ok := ctx.Value(callTimeoutKey{}).(time.Duration); ok && d > 0 {
		return []httpclient.CallOption{httpclient.WithTimeout(d)}
	}
	return nil
}

// call sends one request to a view service and returns the parsed response
func (c *Client) call(ctx context.Context, operation, method, service, path string, body any) (gjson.Result, error) {
	ctx, span := egeriaotel.StartSpan(ctx, c.tracer, "egeria."+operation,
		trace.WithAttributes(
			egeriaotel.AttrServerName.String(c.cfg.ServerName),
			egeriaotel.AttrService.String(service),
			egeriaotel.AttrOperation.String(operation),
		),
	)
	defer span.End()

	data, err := c.http.Do(ctx, method, c.ServiceURL(service, path), body, callOptions(ctx)...)
	if err != nil {
		egeriaotel.RecordError(span, err)
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(data), nil
}

func (c *Client) post(ctx context.Context, operation, service, path string, body any) (gjson.Result, error) {
	return c.call(ctx, operation, http.MethodPost, service, path, body)
}
