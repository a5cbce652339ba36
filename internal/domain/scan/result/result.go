package result

import "github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"

// Item is one record as plain JSON-compatible values.
type Item map[string]any

// Result is one page of a scan.
type Result struct {
	items   []Item
	next    cursor.Cursor
	scanned int
}

// New creates a Result. items must already be truncated to the request limit.
func New(items []Item, next cursor.Cursor, scanned int) Result {
	if items == nil {
		items = []Item{}
	}
	return Result{items: items, next: next, scanned: scanned}
}

// Items returns the records of this page.
func (r Result) Items() []Item { return r.items }

// Next returns the engine's continuation cursor, nil when the scan is done.
func (r Result) Next() cursor.Cursor { return r.next }

// Count returns len(Items()).
func (r Result) Count() int { return len(r.items) }

// ScannedCount returns the number of records the engine examined before filtering.
func (r Result) ScannedCount() int { return r.scanned }

// HasMore reports whether a continuation cursor is present.
func (r Result) HasMore() bool { return !r.next.IsEmpty() }
