// Package format writes command results as JSON, EDN or plain text.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	JSON = "json"
	EDN  = "edn"
	Text = "text"
)

// Texter is implemented by results that have a human-oriented rendering.
type Texter interface {
	Text() string
}

// Check reports whether name is a supported format.
func Check(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", JSON, EDN, Text:
		return nil
	default:
		return fmt.Errorf("unknown format: %s (expected json, edn or text)", name)
	}
}

// Write encodes v in the named format. Text falls back to JSON for values
// that are not Texters.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	case Text:
		if t, ok := v.(Texter); ok {
			_, err := fmt.Fprintln(w, strings.TrimRight(t.Text(), "\n"))
			return err
		}
		return WriteJSON(w, v, true)
	default:
		return Check(format)
	}
}

// WriteJSON writes one JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
