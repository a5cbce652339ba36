package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
	"github.com/kailas-cloud/dynoscan/internal/transport/wire"
	scanuc "github.com/kailas-cloud/dynoscan/internal/usecase/scan"
	schemauc "github.com/kailas-cloud/dynoscan/internal/usecase/schema"
)

type fakeTable struct {
	page    *db.ScanPage
	err     error
	queries []*db.ScanQuery
}

func (f *fakeTable) Scan(_ context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func newTestServer(table *fakeTable) *Server {
	return NewServer(schemauc.New(domschema.Builtin()), scanuc.New(table), "test", zap.NewNop())
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestDescribeSchema(t *testing.T) {
	s := newTestServer(&fakeTable{})

	res, err := s.DescribeSchema(context.Background(), callTool(ToolDescribeSchema, nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var out wire.SchemaResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Len(t, out.Columns, domschema.Builtin().Len())
	assert.Contains(t, out.Columns, "status")
}

func TestScanTable_PassesFiltersAndTruncates(t *testing.T) {
	items := make([]map[string]any, 40)
	for i := range items {
		items[i] = map[string]any{"PK": float64(i)}
	}
	table := &fakeTable{page: &db.ScanPage{
		Items:        items,
		LastKey:      cursor.Cursor{"PK": float64(39)},
		ScannedCount: 400,
	}}
	s := newTestServer(table)

	res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, map[string]any{
		"filters":   map[string]any{"age": map[string]any{"between": []any{20.0, 30.0}}},
		"start_key": map[string]any{"PK": "u#9"},
		"limit":     25.0,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out wire.ScanResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, 25, out.Count)
	assert.Len(t, out.Items, 25)
	assert.Equal(t, 400, out.ScannedCount)
	assert.Equal(t, float64(39), out.LastEvaluatedKey["PK"])

	require.Len(t, table.queries, 1)
	q := table.queries[0]
	require.Equal(t, 1, q.Filter.Len())
	assert.Equal(t, filter.OpBetween, q.Filter.Clauses()[0].Op())
	assert.Equal(t, "u#9", q.StartKey["PK"])
}

func TestScanTable_DefaultsAndClamp(t *testing.T) {
	items := make([]map[string]any, 150)
	for i := range items {
		items[i] = map[string]any{"PK": float64(i)}
	}

	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"no args", nil, 10},
		{"limit above max", map[string]any{"limit": 1000.0}, 100},
		{"zero limit", map[string]any{"limit": 0.0}, 0},
		{"negative limit", map[string]any{"limit": -3.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeTable{page: &db.ScanPage{Items: items, ScannedCount: 150}})

			res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, tt.args))
			require.NoError(t, err)

			var out wire.ScanResponse
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
			assert.Equal(t, tt.want, out.Count)
			assert.Nil(t, out.LastEvaluatedKey)
		})
	}
}

func TestScanTable_FiltersAsJSONString(t *testing.T) {
	table := &fakeTable{page: &db.ScanPage{}}
	s := newTestServer(table)

	res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, map[string]any{
		"filters": `{"status":{"eq":"active"},"name":"John"}`,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, table.queries, 1)
	assert.Equal(t, 2, table.queries[0].Filter.Len())
}

func TestScanTable_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"filters string not json", map[string]any{"filters": "{status"}},
		{"filters wrong type", map[string]any{"filters": []any{"a"}}},
		{"fractional limit", map[string]any{"limit": 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &fakeTable{page: &db.ScanPage{}}
			s := newTestServer(table)

			res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Empty(t, table.queries)
		})
	}
}

func TestScanTable_EngineErrorIsToolError(t *testing.T) {
	table := &fakeTable{err: &db.Error{Op: db.OpScan, Err: errors.New("ProvisionedThroughputExceededException")}}
	s := newTestServer(table)

	res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "ProvisionedThroughputExceededException")
	assert.Len(t, table.queries, 1, "no retries")
}

func TestScanTable_InvalidCursorIsToolError(t *testing.T) {
	table := &fakeTable{err: fmt.Errorf("%w: %q", db.ErrInvalidCursor, "nope")}
	s := newTestServer(table)

	res, err := s.ScanTable(context.Background(), callTool(ToolScanTable, map[string]any{
		"start_key": map[string]any{"cursor": "nope"},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "invalid cursor")
}

func TestTools_Definitions(t *testing.T) {
	scan := ScanTableTool()
	assert.Equal(t, ToolScanTable, scan.Name)
	assert.Contains(t, scan.InputSchema.Properties, "filters")
	assert.Contains(t, scan.InputSchema.Properties, "start_key")
	assert.Contains(t, scan.InputSchema.Properties, "limit")
	assert.Empty(t, scan.InputSchema.Required)

	schema := DescribeSchemaTool()
	assert.Equal(t, ToolDescribeSchema, schema.Name)
	assert.Empty(t, schema.InputSchema.Properties)
}

func TestNewServer_ListsTools(t *testing.T) {
	s := newTestServer(&fakeTable{})

	msg := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"name":"`+ToolDescribeSchema+`"`)
	assert.Contains(t, string(data), `"name":"`+ToolScanTable+`"`)
	assert.Contains(t, string(data), `"readOnlyHint":true`)
}
