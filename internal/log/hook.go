package log

import (
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/ntobjls/internal/logfields"
)

const nullString = "null"

// Hook intercepts and formats a [logrus.Entry] before it logged.
type Hook struct {
	// EncodeAsJSON formats structs, maps, arrays, and slices as JSON.
	//
	// Default is true.
	EncodeAsJSON bool

	// TimeFormat specifies the format for [time.Time] variables.
	// An empty string disables formatting.
	//
	// Default is [TimeFormat].
	TimeFormat string

	// DurationFormat converts [time.Duration] fields to an appropriate encoding.
	// nil leaves durations untouched.
	//
	// Default is [DurationFormatSeconds].
	DurationFormat DurationFormat

	// AddSpanContext adds [logfields.TraceID] and [logfields.SpanID] fields to
	// the entry from the span stored in [logrus.Entry.Context], if it exists.
	AddSpanContext bool
}

var _ logrus.Hook = &Hook{}

func NewHook() *Hook {
	return &Hook{
		EncodeAsJSON:   true,
		TimeFormat:     TimeFormat,
		DurationFormat: DurationFormatSeconds,
		AddSpanContext: true,
	}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) (err error) {
	h.encode(e)
	h.addSpanContext(e)

	return nil
}

// encode loops through all the fields in the [logrus.Entry] and encodes them according to
// the settings in [Hook].
// Errors are always left as is so the formatter can print them.
func (h *Hook) encode(e *logrus.Entry) {
	d := e.Data

	formatTime := h.TimeFormat != ""
	if !(h.EncodeAsJSON || formatTime || h.DurationFormat != nil) {
		return
	}

	for k, v := range d {
		if _, ok := v.(error); k == logrus.ErrorKey || ok {
			continue
		}

		switch vv := v.(type) {
		case time.Time:
			if formatTime {
				d[k] = vv.Format(h.TimeFormat)
			}
			continue
		case time.Duration:
			if h.DurationFormat != nil {
				if i := h.DurationFormat(vv); i != nil {
					d[k] = i
				}
			}
			continue
		}

		if !h.EncodeAsJSON {
			continue
		}

		// dereference any pointers
		rv := reflect.Indirect(reflect.ValueOf(v))
		// check if `v` is a null pointer
		if !rv.IsValid() {
			d[k] = nullString
			continue
		}

		switch rv.Kind() {
		case reflect.Map, reflect.Struct, reflect.Array, reflect.Slice:
		default:
			continue
		}

		b, err := encode(v)
		if err != nil {
			// keep the original value and record why it could not be encoded
			d[k+"-"+logrus.ErrorKey] = err.Error()
			continue
		}
		d[k] = string(b)
	}
}

func (h *Hook) addSpanContext(e *logrus.Entry) {
	if !h.AddSpanContext || e.Context == nil {
		return
	}
	sctx := trace.SpanContextFromContext(e.Context)
	if !sctx.IsValid() {
		return
	}
	e.Data[logfields.TraceID] = sctx.TraceID().String()
	e.Data[logfields.SpanID] = sctx.SpanID().String()
}
