package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const TimeFormat = time.RFC3339Nano

// DurationFormat converts a [time.Duration] into the value logged in its place.
type DurationFormat func(time.Duration) interface{}

var DurationFormatSeconds DurationFormat = func(d time.Duration) interface{} { return d.Seconds() }

// encode formats an object into a JSON string, without any indentation or
// HTML escapes.
func encode(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "")

	if err := enc.Encode(v); err != nil {
		err = fmt.Errorf("could not marshall %T to JSON for logging: %w", v, err)
		return nil, err
	}

	// encoder.Encode appends a newline to the end
	return bytes.TrimSpace(buf.Bytes()), nil
}
