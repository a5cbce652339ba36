package dynoscan

import (
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
)

// Scan limits.
const (
	DefaultLimit = request.DefaultLimit
	MaxLimit     = request.MaxLimit
)

// Column describes one table attribute.
type Column struct {
	Name        string
	Description string
}

// ScanRequest is one scan call.
type ScanRequest struct {
	// Filters maps attribute -> literal (equality) or {operator: operand}.
	// Build it by hand or with NewFilter().Map().
	Filters map[string]any
	// StartKey is LastEvaluatedKey of the previous page; nil for the first page.
	StartKey map[string]any
	// Limit caps returned items. nil means DefaultLimit, values above MaxLimit
	// are clamped and 0 returns an empty page. Use Int to set it inline.
	Limit *int
}

// Int returns a pointer to n, for ScanRequest.Limit.
func Int(n int) *int { return &n }

func (r ScanRequest) toDomain() request.Request {
	var start cursor.Cursor
	if len(r.StartKey) > 0 {
		start = cursor.Cursor(r.StartKey)
	}
	limit := DefaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	return request.New(filter.Parse(r.Filters), start, limit)
}

// ScanPage is one page of results.
type ScanPage struct {
	Items []map[string]any
	// LastEvaluatedKey resumes the scan; nil when the table has been fully scanned.
	LastEvaluatedKey map[string]any
	Count            int
	ScannedCount     int
}

// HasMore reports whether another page can be requested.
func (p *ScanPage) HasMore() bool { return len(p.LastEvaluatedKey) > 0 }

func pageFromDomain(res result.Result) *ScanPage {
	items := make([]map[string]any, len(res.Items()))
	for i, it := range res.Items() {
		items[i] = it
	}
	var next map[string]any
	if res.HasMore() {
		next = res.Next()
	}
	return &ScanPage{
		Items:            items,
		LastEvaluatedKey: next,
		Count:            res.Count(),
		ScannedCount:     res.ScannedCount(),
	}
}
