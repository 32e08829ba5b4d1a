// Package tracing provides the shared OTel tracer helper.
//
// Without a registered TracerProvider the global no-op provider is used and
// every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "floraflow"

// Start creates a span as a child of the span in ctx, or a root span when ctx
// carries none. The caller must call span.End().
//
//	ctx, span := tracing.Start(ctx, "content.fetch",
//	    attribute.String("floraflow.store", "sanity"),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
