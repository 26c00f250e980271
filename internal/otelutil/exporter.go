package otelutil

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Microsoft/ntobjls/internal/logfields"
)

const spanMessage = "Span"

// DefaultSampler records every span.
var DefaultSampler = sdktrace.AlwaysSample()

// LogrusExporter is an OpenTelemetry [sdktrace.SpanExporter] that writes
// finished spans to logrus output.
type LogrusExporter struct{}

var _ sdktrace.SpanExporter = &LogrusExporter{}

// ExportSpans exports each span based on the following rules:
//
// 1. All output will contain the span's attributes, trace ID, span ID, and
// parent span ID for correlation.
//
// 2. Events are not supported.
//
// 3. The span itself will be written at [logrus.InfoLevel] unless its status
// is [codes.Error], in which case it will be written at [logrus.ErrorLevel]
// with the status description as the error value.
func (le *LogrusExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		le.exportSpan(s)
	}
	return nil
}

func (le *LogrusExporter) exportSpan(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if n := s.DroppedAttributes(); n > 0 {
		logrus.WithFields(logrus.Fields{
			logfields.Name:    s.Name(),
			logfields.TraceID: sc.TraceID().String(),
			logfields.SpanID:  sc.SpanID().String(),
			"dropped":         n,
		}).Warning("span had dropped attributes")
	}

	attrs := s.Attributes()
	data := make(logrus.Fields, len(attrs)+8)
	for _, kv := range attrs {
		data[string(kv.Key)] = kv.Value.AsInterface()
	}
	data[logfields.Name] = s.Name()
	data[logfields.TraceID] = sc.TraceID().String()
	data[logfields.SpanID] = sc.SpanID().String()
	if p := s.Parent(); p.IsValid() {
		data[logfields.ParentSpanID] = p.SpanID().String()
	}
	data[logfields.StartTime] = s.StartTime()
	data[logfields.EndTime] = s.EndTime()
	data[logfields.Duration] = s.EndTime().Sub(s.StartTime())

	level := logrus.InfoLevel
	if st := s.Status(); st.Code == codes.Error {
		level = logrus.ErrorLevel
		data[logrus.ErrorKey] = st.Description
	}

	entry := logrus.WithFields(data)
	entry.Time = s.StartTime()
	entry.Log(level, spanMessage)
}

// Shutdown is a no-op; spans are written as soon as they are exported.
func (*LogrusExporter) Shutdown(context.Context) error {
	return nil
}
