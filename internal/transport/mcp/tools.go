package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
)

// Tool names.
const (
	ToolDescribeSchema = "describe_table_schema"
	ToolScanTable      = "scan_table"
)

const scanTableDescription = `Scan the table with optional filters and start_key for pagination.
Returns up to limit matching items per call.

filters maps an attribute name to either a literal (equality) or an object of
operator -> operand:
  eq, ne, lt, lte, gt, gte   compare with a value
  begins_with, contains      string prefix / substring or list element
  between                    [lo, hi], inclusive
  in                         [v1, v2, ...]
  exists, not_exists         true
All conditions must hold. Malformed conditions are ignored.

The engine filters after reading a page, so a call may return fewer than limit
items while more exist. When lastEvaluatedKey is present, pass it back as
start_key to continue.

Examples:
  {"status": {"eq": "active"}}
  {"age": {"gte": 30}, "job": {"eq": "Developer"}}
  {"age": {"between": [20, 30]}}
  {"hobbies": {"contains": "Reading"}}`

// DescribeSchemaTool lists the table's column names and descriptions.
func DescribeSchemaTool() mcp.Tool {
	return mcp.NewTool(ToolDescribeSchema,
		mcp.WithDescription("Return the column names of the table with a short description of each"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// ScanTableTool runs one filtered, paginated scan.
func ScanTableTool() mcp.Tool {
	return mcp.NewTool(ToolScanTable,
		mcp.WithDescription(scanTableDescription),
		mcp.WithObject("filters",
			mcp.Description("Attribute conditions, e.g. {\"status\": {\"eq\": \"active\"}}"),
		),
		mcp.WithObject("start_key",
			mcp.Description("lastEvaluatedKey from the previous page"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return"),
			mcp.Min(1),
			mcp.Max(request.MaxLimit),
			mcp.DefaultNumber(request.DefaultLimit),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}
