package dynoscan

import (
	"context"
	"time"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
)

// --- db.Engine fake ---

// fakeEngine serves scripted pages keyed by the "PK" of the start key;
// the first page is keyed by "".
type fakeEngine struct {
	pages   map[string]*db.ScanPage
	scanErr error
	pingErr error
	queries []*db.ScanQuery
	closed  bool
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Close() { f.closed = true }

func (f *fakeEngine) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeEngine) WaitForReady(_ context.Context, _ time.Duration) error { return f.pingErr }

func (f *fakeEngine) Scan(_ context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	f.queries = append(f.queries, q)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	key := ""
	if pk, ok := q.StartKey["PK"].(string); ok {
		key = pk
	}
	page, ok := f.pages[key]
	if !ok {
		return &db.ScanPage{}, nil
	}
	return page, nil
}

func items(ids ...string) []map[string]any {
	out := make([]map[string]any, len(ids))
	for i, id := range ids {
		out[i] = map[string]any{"PK": id, "SK": "PROFILE"}
	}
	return out
}

func next(pk string) cursor.Cursor {
	return cursor.Cursor{"PK": pk, "SK": "PROFILE"}
}

// threePages chains "" -> "u2" -> "u4" -> end.
func threePages() *fakeEngine {
	return &fakeEngine{pages: map[string]*db.ScanPage{
		"":   {Items: items("u1", "u2"), LastKey: next("u2"), ScannedCount: 5},
		"u2": {Items: items("u3", "u4"), LastKey: next("u4"), ScannedCount: 5},
		"u4": {Items: items("u5"), ScannedCount: 2},
	}}
}
