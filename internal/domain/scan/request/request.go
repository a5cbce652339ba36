package request

import (
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

// Scan limits.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Request is a normalized scan request.
type Request struct {
	filter   filter.Expression
	startKey cursor.Cursor
	limit    int
}

// New normalizes scan parameters. The limit is clamped to [0, MaxLimit];
// callers substitute DefaultLimit when the client sent none.
func New(f filter.Expression, startKey cursor.Cursor, limit int) Request {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{filter: f, startKey: startKey, limit: limit}
}

// Filter returns the conjunctive predicate.
func (r Request) Filter() filter.Expression { return r.filter }

// StartKey returns the cursor to resume from, nil for the first page.
func (r Request) StartKey() cursor.Cursor { return r.startKey }

// Limit returns the maximum number of items to return.
// Zero is a valid limit and yields an empty page.
func (r Request) Limit() int { return r.limit }
