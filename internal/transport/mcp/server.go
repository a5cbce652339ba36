// Package mcp exposes the schema and scan operations as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/domain"
	logpkg "github.com/kailas-cloud/dynoscan/internal/logger"
	"github.com/kailas-cloud/dynoscan/internal/transport/wire"
	scanuc "github.com/kailas-cloud/dynoscan/internal/usecase/scan"
	schemauc "github.com/kailas-cloud/dynoscan/internal/usecase/schema"
)

const instructions = "Scans a single fixed table. " +
	"Call describe_table_schema first to learn the column names, " +
	"then scan_table with filters and start_key for pagination. Read-only."

// Server adapts the use cases to MCP tool handlers.
type Server struct {
	schema *schemauc.Service
	scan   *scanuc.Service
	logger *zap.Logger
	mcp    *server.MCPServer
}

// NewServer registers both tools on a new MCP server.
func NewServer(schema *schemauc.Service, scan *scanuc.Service, version string, logger *zap.Logger) *Server {
	s := &Server{
		schema: schema,
		scan:   scan,
		logger: logger,
	}
	s.mcp = server.NewMCPServer("dynoscan", version,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)
	s.mcp.AddTool(DescribeSchemaTool(), s.DescribeSchema)
	s.mcp.AddTool(ScanTableTool(), s.ScanTable)
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// ServeStdio runs the protocol loop until ctx is cancelled or in is closed.
// out must be reserved for the protocol stream.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))
	stdio.SetContextFunc(func(ctx context.Context) context.Context {
		return logpkg.ContextWithLogger(ctx, s.logger)
	})

	s.logger.Info("Serving MCP over stdio")
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

// DescribeSchema handles describe_table_schema.
func (s *Server) DescribeSchema(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(wire.SchemaResponse{Columns: s.schema.Describe()})
}

// ScanTable handles scan_table. Engine failures are reported as tool errors, not protocol errors.
func (s *Server) ScanTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scanReq, err := decodeScanRequest(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, log := logpkg.WithFields(ctx, zap.String("tool", ToolScanTable))
	res, err := s.scan.Scan(ctx, scanReq.ToDomain())
	if err != nil {
		log.Warn("Tool call failed", zap.Error(err))
		return mcp.NewToolResultError(toolErrorMessage(err)), nil
	}
	return jsonResult(wire.ScanResponseFrom(res))
}

// decodeScanRequest accepts filters and start_key as objects or as JSON-encoded strings.
func decodeScanRequest(args map[string]any) (wire.ScanRequest, error) {
	normalized := make(map[string]any, len(args))
	for k, v := range args {
		normalized[k] = v
	}
	for _, key := range []string{"filters", "start_key"} {
		str, ok := normalized[key].(string)
		if !ok {
			continue
		}
		if str == "" {
			delete(normalized, key)
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(str), &obj); err != nil {
			return wire.ScanRequest{}, fmt.Errorf("%w: %s must be a JSON object", domain.ErrInvalidRequest, key)
		}
		normalized[key] = obj
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return wire.ScanRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	var out wire.ScanRequest
	if err := json.Unmarshal(data, &out); err != nil {
		return wire.ScanRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return out, nil
}

func toolErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return err.Error()
	}
	if errors.Is(err, domain.ErrEngine) {
		return "scan failed: " + err.Error()
	}
	return "internal error"
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
