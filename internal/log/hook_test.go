package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/ntobjls/internal/logfields"
)

func TestHookEncode(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	err := errors.New("boom")
	var nilPtr *struct{ A int }

	e := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"time":     ts,
		"duration": 1500 * time.Millisecond,
		"struct":   struct{ Name string }{Name: `\Device`},
		"slice":    []string{"a", "b"},
		"string":   `\Global??`,
		"int":      3,
		"nil":      nilPtr,
		"err":      err,
	})
	NewHook().encode(e)

	for k, want := range map[string]interface{}{
		"time":     ts.Format(TimeFormat),
		"duration": 1.5,
		"struct":   `{"Name":"\\Device"}`,
		"slice":    `["a","b"]`,
		"string":   `\Global??`,
		"int":      3,
		"nil":      nullString,
		"err":      err,
	} {
		if got := e.Data[k]; got != want {
			t.Errorf("field %q: expected %v (%T), got %v (%T)", k, want, want, got, got)
		}
	}
}

func TestHookAddSpanContext(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	e := logrus.NewEntry(logrus.New()).WithContext(ctx)
	e.Data = logrus.Fields{}
	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}
	if got := e.Data[logfields.TraceID]; got != sc.TraceID().String() {
		t.Errorf("expected trace ID %s, got %v", sc.TraceID(), got)
	}
	if got := e.Data[logfields.SpanID]; got != sc.SpanID().String() {
		t.Errorf("expected span ID %s, got %v", sc.SpanID(), got)
	}

	// no span, no fields
	e = logrus.NewEntry(logrus.New()).WithContext(context.Background())
	e.Data = logrus.Fields{}
	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.Data[logfields.TraceID]; ok {
		t.Errorf("expected no trace ID without a span, got %v", e.Data)
	}
}

func TestContextEntry(t *testing.T) {
	ctx := context.Background()
	if G(ctx).Context != ctx {
		t.Fatal("expected default entry to reference the context")
	}

	ctx, e := S(ctx, logrus.Fields{logfields.Operation: "list"})
	if G(ctx) != e {
		t.Fatal("expected stored entry to be returned")
	}

	type key struct{}
	child := context.WithValue(ctx, key{}, 1)
	if got := G(child); got.Context == child {
		t.Fatal("expected stored entry to reference the parent context")
	}
	if got := G(UpdateContext(child)); got.Context != child || got.Data[logfields.Operation] != "list" {
		t.Fatalf("expected updated entry with fields preserved, got %+v", got)
	}
}
