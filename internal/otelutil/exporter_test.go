package otelutil

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Microsoft/ntobjls/internal/logfields"
)

func TestLogrusExporter(t *testing.T) {
	logger := logrus.StandardLogger()
	oldHooks := logger.ReplaceHooks(make(logrus.LevelHooks))
	oldOut := logger.Out
	t.Cleanup(func() {
		logger.ReplaceHooks(oldHooks)
		logger.SetOutput(oldOut)
	})
	logger.SetOutput(io.Discard)
	capture := logtest.NewGlobal()

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(DefaultSampler),
		sdktrace.WithSyncer(&LogrusExporter{}),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tr := tp.Tracer(TracerName)

	ctx, parent := tr.Start(context.Background(), "parent")
	_, child := tr.Start(ctx, "child")
	child.SetAttributes(attribute.String(logfields.Path, `\Device`), attribute.Int(logfields.Count, 7))
	SetSpanStatus(child, errors.New("access denied"))
	child.End()
	SetSpanStatus(parent, nil)
	parent.End()

	entries := capture.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 exported spans, got %d", len(entries))
	}

	c := entries[0]
	if c.Message != spanMessage || c.Data[logfields.Name] != "child" {
		t.Fatalf("expected child span first, got %q %v", c.Message, c.Data)
	}
	if c.Level != logrus.ErrorLevel || c.Data[logrus.ErrorKey] != "access denied" {
		t.Errorf("expected failed span at error level, got %v with error %v", c.Level, c.Data[logrus.ErrorKey])
	}
	if c.Data[logfields.Path] != `\Device` || c.Data[logfields.Count] != int64(7) {
		t.Errorf("expected span attributes as fields, got %v", c.Data)
	}
	if c.Data[logfields.ParentSpanID] != parent.SpanContext().SpanID().String() {
		t.Errorf("expected parent span ID %s, got %v", parent.SpanContext().SpanID(), c.Data[logfields.ParentSpanID])
	}
	if _, ok := c.Data[logfields.Duration].(time.Duration); !ok {
		t.Errorf("expected a duration field, got %T", c.Data[logfields.Duration])
	}

	p := entries[1]
	if p.Level != logrus.InfoLevel {
		t.Errorf("expected successful span at info level, got %v", p.Level)
	}
	if _, ok := p.Data[logfields.ParentSpanID]; ok {
		t.Errorf("expected no parent span ID for a root span, got %v", p.Data[logfields.ParentSpanID])
	}
	if p.Data[logfields.SpanID] != parent.SpanContext().SpanID().String() {
		t.Errorf("expected span ID %s, got %v", parent.SpanContext().SpanID(), p.Data[logfields.SpanID])
	}
}
