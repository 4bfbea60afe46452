package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Names lists the supported --format values.
var Names = []string{"json", "edn"}

// Write encodes v to w as json (the default) or edn.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s (want %s)", format, strings.Join(Names, "|"))
	}
}

// WriteJSON writes v followed by a newline. Emoji and other non-ASCII text are
// written as-is rather than \u-escaped.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
