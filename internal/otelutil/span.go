package otelutil

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/ntobjls/internal/log"
)

// TracerName is the instrumentation name spans are recorded under.
const TracerName = "github.com/Microsoft/ntobjls"

// SetSpanStatus sets `span.SetStatus` to the proper status depending on `err`. If
// `err` is `nil` assumes `codes.Ok`.
func SetSpanStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// StartSpan wraps "go.opentelemetry.io/otel/trace".Tracer.Start, but, if the span is
// recording, updates the log entry in the context to point to the newly created span.
func StartSpan(ctx context.Context, name string, o ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, s := otel.Tracer(TracerName).Start(ctx, name, o...)
	if s.IsRecording() {
		ctx = log.UpdateContext(ctx)
	}
	return ctx, s
}
