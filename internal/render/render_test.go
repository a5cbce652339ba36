package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
)

func sampleResult() result.Result {
	return result.New([]result.Item{
		{"status": "active", "PK": "u#1", "age": float64(31), "tags": []any{"a", "b"}},
		{"PK": "u#2", "SK": "profile", "nickname": "jo"},
	}, cursor.Cursor{"PK": "u#2"}, 17)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{"", FormatTable, FormatJSON} {
		if _, err := New(&buf, format); err != nil {
			t.Errorf("format %q: unexpected error %v", format, err)
		}
	}
	if _, err := New(&buf, "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTableFormatter_Scan(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Scan(sampleResult()); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	out := buf.String()

	header := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "PK") {
			header = line
			break
		}
	}
	if header == "" {
		t.Fatalf("no header row in output:\n%s", out)
	}
	if strings.Index(header, "PK") > strings.Index(header, "SK") ||
		strings.Index(header, "SK") > strings.Index(header, "age") {
		t.Errorf("expected PK, SK, then sorted attributes: %q", header)
	}
	for _, want := range []string{"u#1", "u#2", "31", `["a","b"]`, "nickname",
		"count: 2", "scannedCount: 17", `lastEvaluatedKey: {"PK":"u#2"}`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_ScanEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Scan(result.New(nil, nil, 40)); err != nil {
		t.Fatal(err)
	}
	want := "count: 0  scannedCount: 40  lastEvaluatedKey: -\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTableFormatter_Schema(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Schema(domschema.Builtin().Fields()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "column") || !strings.Contains(buf.String(), "userEmail") {
		t.Errorf("unexpected schema table:\n%s", buf.String())
	}
}

func TestJSONFormatter_Scan(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Scan(sampleResult()); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["count"] != float64(2) || got["scannedCount"] != float64(17) {
		t.Errorf("unexpected counts: %v", got)
	}
	if key, ok := got["lastEvaluatedKey"].(map[string]any); !ok || key["PK"] != "u#2" {
		t.Errorf("unexpected lastEvaluatedKey: %v", got["lastEvaluatedKey"])
	}
}

func TestJSONFormatter_Schema(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Schema(domschema.Builtin().Fields()); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Columns map[string]string `json:"columns"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Columns) != domschema.Builtin().Len() {
		t.Errorf("expected %d columns, got %d", domschema.Builtin().Len(), len(got.Columns))
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"x", "x"},
		{true, "true"},
		{float64(1.5), "1.5"},
		{float64(1e21), "1000000000000000000000"},
		{42, "42"},
		{map[string]any{"a": float64(1)}, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
