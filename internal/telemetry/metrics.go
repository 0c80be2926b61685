package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ClientMetricsMeterName is the name used for the client metrics meter
const ClientMetricsMeterName = "github.com/stacklok/egeria-client-go/client"

// ClientMetrics holds the OpenTelemetry instruments for calls to the Egeria platform
type ClientMetrics struct {
	requestDuration  metric.Float64Histogram
	requestsTotal    metric.Int64Counter
	activeRequests   metric.Int64UpDownCounter
	elementsReturned metric.Int64Histogram
}

// NewClientMetrics creates a new ClientMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewClientMetrics(provider metric.MeterProvider) (*ClientMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(ClientMetricsMeterName)

	requestDuration, err := meter.Float64Histogram(
		"egeria_client_request_duration_seconds",
		metric.WithDescription("Duration of calls to the Egeria platform in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	requestsTotal, err := meter.Int64Counter(
		"egeria_client_requests_total",
		metric.WithDescription("Total number of calls to the Egeria platform"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"egeria_client_active_requests",
		metric.WithDescription("Number of calls to the Egeria platform in flight"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	elementsReturned, err := meter.Int64Histogram(
		"egeria_client_elements_returned",
		metric.WithDescription("Number of elements returned by find and get calls"),
		metric.WithUnit("{element}"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 10, 25, 50, 100, 250, 500, 1000),
	)
	if err != nil {
		return nil, err
	}

	return &ClientMetrics{
		requestDuration:  requestDuration,
		requestsTotal:    requestsTotal,
		activeRequests:   activeRequests,
		elementsReturned: elementsReturned,
	}, nil
}

// RecordRequest records one completed call. statusCode is 0 when no response was received.
func (m *ClientMetrics) RecordRequest(ctx context.Context, method, service string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("service", service),
		attribute.String("status_code", strconv.Itoa(statusCode)),
	)
	m.requestDuration.Record(ctx, duration.Seconds(), attrs)
	m.requestsTotal.Add(ctx, 1, attrs)
}

// RequestStarted and RequestFinished bracket a call for the in-flight gauge
func (m *ClientMetrics) RequestStarted(ctx context.Context, service string) {
	if m == nil {
		return
	}
	m.activeRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("service", service)))
}

// RequestFinished marks the end of a call started with RequestStarted
func (m *ClientMetrics) RequestFinished(ctx context.Context, service string) {
	if m == nil {
		return
	}
	m.activeRequests.Add(ctx, -1, metric.WithAttributes(attribute.String("service", service)))
}

// RecordElements records how many elements a query returned
func (m *ClientMetrics) RecordElements(ctx context.Context, typeName string, count int) {
	if m == nil {
		return
	}
	m.elementsReturned.Record(ctx, int64(count), metric.WithAttributes(attribute.String("type_name", typeName)))
}
