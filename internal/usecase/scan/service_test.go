package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
)

// --- Mocks ---

type mockTable struct {
	page    *db.ScanPage
	err     error
	queries []*db.ScanQuery
}

func (m *mockTable) Scan(_ context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	m.queries = append(m.queries, q)
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func items(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{"PK": fmt.Sprintf("USER#%03d", i)}
	}
	return out
}

// --- Tests ---

func TestScan_DefaultLimit(t *testing.T) {
	table := &mockTable{page: &db.ScanPage{Items: items(40), ScannedCount: 40}}
	svc := New(table)

	res, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, request.DefaultLimit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count() != request.DefaultLimit {
		t.Errorf("Count() = %d, want %d", res.Count(), request.DefaultLimit)
	}
	if res.Count() != len(res.Items()) {
		t.Errorf("Count() %d != len(Items()) %d", res.Count(), len(res.Items()))
	}
}

func TestScan_ZeroLimitReturnsNoItems(t *testing.T) {
	next := cursor.Cursor{"PK": "USER#039"}
	table := &mockTable{page: &db.ScanPage{Items: items(40), LastKey: next, ScannedCount: 40}}
	svc := New(table)

	res, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count() != 0 || len(res.Items()) != 0 {
		t.Errorf("Count() = %d, items = %d, want 0", res.Count(), len(res.Items()))
	}
	if res.ScannedCount() != 40 || res.Next()["PK"] != "USER#039" {
		t.Errorf("engine metadata not passed through: scanned=%d next=%v", res.ScannedCount(), res.Next())
	}
}

func TestScan_LimitNeverExceeded(t *testing.T) {
	for _, limit := range []int{0, 1, 5, 10, 99, 100, 101, 500, 10000} {
		t.Run(fmt.Sprint(limit), func(t *testing.T) {
			table := &mockTable{page: &db.ScanPage{Items: items(250), ScannedCount: 900}}
			svc := New(table)

			req := request.New(filter.Expression{}, nil, limit)
			res, err := svc.Scan(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Count() > req.Limit() || res.Count() > request.MaxLimit {
				t.Errorf("Count() = %d exceeds limit %d", res.Count(), req.Limit())
			}
			if res.Count() != len(res.Items()) {
				t.Errorf("Count() %d != len(Items()) %d", res.Count(), len(res.Items()))
			}
		})
	}
}

func TestScan_ShortBatchIsNotPadded(t *testing.T) {
	next := cursor.Cursor{"PK": "USER#002"}
	table := &mockTable{page: &db.ScanPage{Items: items(3), ScannedCount: 1000, LastKey: next}}
	svc := New(table)

	res, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count() != 3 {
		t.Errorf("Count() = %d, want 3", res.Count())
	}
	if res.ScannedCount() != 1000 {
		t.Errorf("ScannedCount() = %d, want 1000", res.ScannedCount())
	}
	if !res.HasMore() || res.Next()["PK"] != "USER#002" {
		t.Errorf("Next() = %v", res.Next())
	}
	if len(table.queries) != 1 {
		t.Errorf("expected exactly one engine call, got %d", len(table.queries))
	}
}

func TestScan_TruncatesPrefixVerbatim(t *testing.T) {
	table := &mockTable{page: &db.ScanPage{Items: items(20), ScannedCount: 20}}
	svc := New(table)

	res, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, it := range res.Items() {
		if want := fmt.Sprintf("USER#%03d", i); it["PK"] != want {
			t.Errorf("item %d = %v, want %s", i, it["PK"], want)
		}
	}
}

func TestScan_CursorAndFilterPassedThrough(t *testing.T) {
	table := &mockTable{page: &db.ScanPage{}}
	svc := New(table)

	start := cursor.Cursor{"PK": "USER#9", "SK": "PROFILE"}
	f := filter.Parse(map[string]any{"status": map[string]any{"eq": "active"}})
	if _, err := svc.Scan(context.Background(), request.New(f, start, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := table.queries[0]
	if q.StartKey["PK"] != "USER#9" || q.StartKey["SK"] != "PROFILE" {
		t.Errorf("StartKey = %v", q.StartKey)
	}
	if q.Filter.Len() != 1 || q.Filter.Clauses()[0].Field() != "status" {
		t.Errorf("Filter = %v", q.Filter.Clauses())
	}
}

func TestScan_EmptyBatch(t *testing.T) {
	table := &mockTable{page: &db.ScanPage{ScannedCount: 12}}
	svc := New(table)

	res, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items() == nil {
		t.Error("Items() should be empty, not nil")
	}
	if res.Count() != 0 || res.HasMore() {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestScan_EngineErrorPropagates(t *testing.T) {
	cause := &db.Error{Op: db.OpScan, Err: errors.New("throttled")}
	table := &mockTable{err: cause}
	svc := New(table)

	_, err := svc.Scan(context.Background(), request.New(filter.Expression{}, nil, 10))
	if err == nil {
		t.Fatal("expected error")
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Errorf("expected db.Error in chain, got %v", err)
	}
	if !errors.Is(err, domain.ErrEngine) {
		t.Errorf("expected ErrEngine in chain, got %v", err)
	}
	if len(table.queries) != 1 {
		t.Errorf("expected no retries, got %d calls", len(table.queries))
	}
}

func TestScan_InvalidCursorIsClientError(t *testing.T) {
	table := &mockTable{err: fmt.Errorf("%w: %q", db.ErrInvalidCursor, "abc")}
	svc := New(table)

	_, err := svc.Scan(context.Background(), request.New(filter.Expression{}, cursor.Cursor{"cursor": "abc"}, 10))
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if errors.Is(err, domain.ErrEngine) {
		t.Errorf("invalid cursor must not be reported as an engine error: %v", err)
	}
	if !errors.Is(err, db.ErrInvalidCursor) {
		t.Errorf("expected ErrInvalidCursor in chain, got %v", err)
	}
}

func TestScan_SameRequestSamePage(t *testing.T) {
	table := &mockTable{page: &db.ScanPage{Items: items(30), ScannedCount: 30}}
	svc := New(table)

	req := request.New(filter.Parse(map[string]any{"a": "b"}), nil, 7)
	first, _ := svc.Scan(context.Background(), req)
	second, _ := svc.Scan(context.Background(), req)

	if first.Count() != second.Count() {
		t.Fatalf("counts differ: %d vs %d", first.Count(), second.Count())
	}
	for i := range first.Items() {
		if first.Items()[i]["PK"] != second.Items()[i]["PK"] {
			t.Errorf("item %d differs", i)
		}
	}
}
