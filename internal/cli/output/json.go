// Package output provides output formatting for logmesh-cli.
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes reports and configuration views as JSON, one
// document per call. Output is indented with two spaces unless Compact is set.
type JSONFormatter struct {
	Compact bool
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}
