package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
)

// keyColumns lead every table in this order when present.
var keyColumns = []string{"PK", "SK"}

// TableFormatter renders ASCII tables.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Scan writes one row per item followed by a pagination summary line.
func (t *TableFormatter) Scan(res result.Result) error {
	items := res.Items()
	if len(items) > 0 {
		columns := columnsOf(items)

		table := t.newTable()
		table.SetHeader(columns)
		for _, item := range items {
			row := make([]string, len(columns))
			for i, col := range columns {
				if v, ok := item[col]; ok {
					row[i] = formatValue(v)
				}
			}
			table.Append(row)
		}
		table.Render()
	}

	next := "-"
	if res.HasMore() {
		next = formatValue(map[string]any(res.Next()))
	}
	_, err := fmt.Fprintf(t.writer, "count: %d  scannedCount: %d  lastEvaluatedKey: %s\n",
		res.Count(), res.ScannedCount(), next)
	return err
}

// Schema writes a name/description table.
func (t *TableFormatter) Schema(fields []domschema.Field) error {
	table := t.newTable()
	table.SetHeader([]string{"column", "description"})
	for _, f := range fields {
		table.Append([]string{f.Name(), f.Description()})
	}
	table.Render()
	return nil
}

func (t *TableFormatter) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// columnsOf returns the union of item attributes: key columns first, the rest sorted.
func columnsOf(items []result.Item) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for k := range item {
			seen[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for _, k := range keyColumns {
		if _, ok := seen[k]; ok {
			columns = append(columns, k)
			delete(seen, k)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

// formatValue converts an attribute value to a cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
