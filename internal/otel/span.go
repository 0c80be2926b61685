// Package otel provides OpenTelemetry span helpers for the Egeria client.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys shared by the spans the client opens
const (
	AttrServerName   = attribute.Key("egeria.server.name")
	AttrService      = attribute.Key("egeria.service")
	AttrOperation    = attribute.Key("egeria.operation")
	AttrTypeName     = attribute.Key("egeria.type_name")
	AttrOutputFormat = attribute.Key("egeria.output.format")
	AttrElementGUID  = attribute.Key("egeria.element.guid")
	AttrResultCount  = attribute.Key("result.count")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns the span
// already in ctx (a no-op span when there is none).
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records an error on a span and sets the span status to error.
// It safely handles nil spans and nil errors.
// The status description stays generic; request bodies and tokens can appear in
// error text and are only kept in the span event.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
