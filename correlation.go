package structlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// CorrelationFromContext returns the OpenTelemetry trace and span ids of the
// span carried by ctx. Both are empty when ctx holds no valid span.
func CorrelationFromContext(ctx context.Context) (traceID, spanID string) {
	if ctx == nil {
		return emptyString, emptyString
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return emptyString, emptyString
	}
	return sc.TraceID().String(), sc.SpanID().String()
}
