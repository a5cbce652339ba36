// Package render prints scan pages and the schema catalog for the CLI.
package render

import (
	"fmt"
	"io"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formatter writes command output.
type Formatter interface {
	Scan(res result.Result) error
	Schema(fields []domschema.Field) error
}

// New returns the formatter for format.
func New(w io.Writer, format string) (Formatter, error) {
	switch format {
	case "", FormatTable:
		return NewTableFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
}
