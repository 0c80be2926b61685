package telemetry

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	egeriaotel "github.com/stacklok/egeria-client-go/internal/otel"
)

// TracerName is the name used for the HTTP client tracer
const TracerName = "github.com/stacklok/egeria-client-go/http"

const (
	servicePathMarker  = "/api/open-metadata/"
	platformPathMarker = "/open-metadata/platform-services/"

	// unknownService keeps metric cardinality bounded for unrecognised paths
	unknownService = "unknown_service"
)

// Transport is an http.RoundTripper that opens a client span per call, propagates
// the W3C trace context to the platform and records request metrics
type Transport struct {
	base       http.RoundTripper
	tracer     trace.Tracer
	metrics    *ClientMetrics
	propagator propagation.TextMapPropagator
}

// NewTransport wraps base (http.DefaultTransport when nil). When both providers are
// nil base is returned unchanged.
func NewTransport(base http.RoundTripper, tp trace.TracerProvider, mp metric.MeterProvider) (http.RoundTripper, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	if tp == nil && mp == nil {
		return base, nil
	}

	metrics, err := NewClientMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("failed to create client metrics: %w", err)
	}

	t := &Transport{
		base:       base,
		metrics:    metrics,
		propagator: otel.GetTextMapPropagator(),
	}
	if tp != nil {
		t.tracer = tp.Tracer(TracerName)
	}
	return t, nil
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	service := ServiceFromPath(req.URL.Path)

	ctx, span := egeriaotel.StartSpan(req.Context(), t.tracer,
		fmt.Sprintf("%s %s", req.Method, service),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.ServerAddress(req.URL.Hostname()),
			semconv.URLPath(req.URL.Path),
			egeriaotel.AttrService.String(service),
		),
	)
	defer span.End()

	// RoundTrippers must not modify the caller's request
	outbound := req.Clone(ctx)
	t.propagator.Inject(ctx, propagation.HeaderCarrier(outbound.Header))

	t.metrics.RequestStarted(ctx, service)
	start := time.Now()
	resp, err := t.base.RoundTrip(outbound)
	t.metrics.RequestFinished(ctx, service)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	t.metrics.RecordRequest(ctx, req.Method, service, statusCode, time.Since(start))

	if err != nil {
		egeriaotel.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(semconv.HTTPResponseStatusCode(statusCode))
	if statusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(statusCode))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return resp, nil
}

// ServiceFromPath names the view service a URL path addresses, for example
// "collection-manager" for /servers/view/api/open-metadata/collection-manager/collections
func ServiceFromPath(path string) string {
	if idx := strings.Index(path, servicePathMarker); idx >= 0 {
		rest := path[idx+len(servicePathMarker):]
		if name, _, _ := strings.Cut(rest, "/"); name != "" {
			return name
		}
		return unknownService
	}
	if strings.Contains(path, platformPathMarker) {
		return "platform-services"
	}
	return unknownService
}
