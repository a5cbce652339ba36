// Package wire holds the JSON shapes shared by the HTTP and MCP transports.
package wire

import (
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	healthuc "github.com/kailas-cloud/dynoscan/internal/usecase/health"
)

// ScanRequest is the input of a scan call.
type ScanRequest struct {
	Filters  map[string]any `json:"filters,omitempty"`
	StartKey map[string]any `json:"start_key,omitempty"`
	Limit    *int           `json:"limit,omitempty"`
}

// ToDomain normalizes the request. Malformed filter entries are dropped here.
// An absent limit means DefaultLimit; an explicit 0 asks for an empty page.
func (r ScanRequest) ToDomain() request.Request {
	limit := request.DefaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	var start cursor.Cursor
	if len(r.StartKey) > 0 {
		start = cursor.Cursor(r.StartKey)
	}
	return request.New(filter.Parse(r.Filters), start, limit)
}

// ScanResponse is one page of scan output.
type ScanResponse struct {
	Items            []result.Item `json:"items"`
	LastEvaluatedKey cursor.Cursor `json:"lastEvaluatedKey"`
	Count            int           `json:"count"`
	ScannedCount     int           `json:"scannedCount"`
}

// ScanResponseFrom converts a domain result.
func ScanResponseFrom(res result.Result) ScanResponse {
	return ScanResponse{
		Items:            res.Items(),
		LastEvaluatedKey: res.Next(),
		Count:            res.Count(),
		ScannedCount:     res.ScannedCount(),
	}
}

// SchemaResponse lists the table columns.
type SchemaResponse struct {
	Columns map[string]string `json:"columns"`
}

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest    ErrorCode = "bad_request"
	CodeNotFound      ErrorCode = "not_found"
	CodeUnauthorized  ErrorCode = "unauthorized"
	CodeEngineError   ErrorCode = "engine_error"
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the body of every failed HTTP call.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HealthResponse reports engine reachability.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthResponseFrom converts a health report.
func HealthResponseFrom(report healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(report.Status), Checks: checks}
}
