package render

import (
	"encoding/json"
	"io"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
	"github.com/kailas-cloud/dynoscan/internal/transport/wire"
)

// JSONFormatter writes the same documents the HTTP and MCP transports return.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Scan writes one scan page document.
func (j *JSONFormatter) Scan(res result.Result) error {
	return j.encode(wire.ScanResponseFrom(res))
}

// Schema writes {"columns": {...}}.
func (j *JSONFormatter) Schema(fields []domschema.Field) error {
	columns := make(map[string]string, len(fields))
	for _, f := range fields {
		columns[f.Name()] = f.Description()
	}
	return j.encode(wire.SchemaResponse{Columns: columns})
}

func (j *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
