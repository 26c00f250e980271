package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Microsoft/ntobjls/internal/objdir"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q; must be %q or %q", s, formatText, formatJSON)
	}
}

func printObjects(w io.Writer, f outputFormat, objects []objdir.ObjectInfo) error {
	if f == formatJSON {
		return encodeJSON(w, objects)
	}

	for _, o := range objects {
		var err error
		if o.Target != "" {
			_, err = fmt.Fprintf(w, "%s (%s) -> %s\n", o.Name, o.TypeName, o.Target)
		} else {
			_, err = fmt.Fprintf(w, "%s (%s)\n", o.Name, o.TypeName)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d objects.\n", len(objects))
	return err
}

// printError reports a failed NTSTATUS. It is output, not an error, so the
// process still exits normally.
func printError(w io.Writer, f outputFormat, status objdir.Status) error {
	code := fmt.Sprintf("0x%X", status.Code())
	if f == formatJSON {
		return encodeJSON(w, map[string]string{"error": code})
	}
	_, err := fmt.Fprintf(w, "Error: %s\n", code)
	return err
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
