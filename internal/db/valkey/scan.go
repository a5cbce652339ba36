package valkey

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
)

// cursorKey is the only entry of the cursors this store hands out.
const cursorKey = "cursor"

// Scan runs one SCAN step over the key prefix, loads the returned records and
// keeps those matching the filter. SCAN decides how many keys a step returns.
func (s *Store) Scan(ctx context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	start, err := decodeCursor(q.StartKey)
	if err != nil {
		return nil, err
	}

	cmd := s.b().Scan().Cursor(start).Match(s.prefix + "*").Count(int64(s.pageSize)).Build()
	entry, err := s.do(ctx, cmd).AsScanEntry()
	if err != nil {
		return nil, &db.Error{Op: db.OpKeyScan, Err: err}
	}

	records, err := s.getMulti(ctx, entry.Elements)
	if err != nil {
		return nil, err
	}

	match := compilePredicate(q.Filter)
	page := &db.ScanPage{
		Items:        make([]map[string]any, 0, len(records)),
		ScannedCount: len(records),
	}
	for _, rec := range records {
		if match(rec) {
			page.Items = append(page.Items, rec)
		}
	}
	if entry.Cursor != 0 {
		page.LastKey = cursor.Cursor{cursorKey: strconv.FormatUint(entry.Cursor, 10)}
	}
	return page, nil
}

// getMulti fetches records in a single DoMulti round-trip.
// Keys removed between SCAN and GET are skipped.
func (s *Store) getMulti(ctx context.Context, keys []string) ([]map[string]any, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, len(keys))
	for i, key := range keys {
		cmds[i] = s.b().Get().Key(key).Build()
	}

	results := s.client.DoMulti(ctx, cmds...)
	out := make([]map[string]any, 0, len(results))
	for i, res := range results {
		raw, err := res.ToString()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, &db.Error{Op: db.OpGet, Err: fmt.Errorf("key %s: %w", keys[i], err)}
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", keys[i], err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeCursor(c cursor.Cursor) (uint64, error) {
	if c.IsEmpty() {
		return 0, nil
	}
	switch v := c[cursorKey].(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", db.ErrInvalidCursor, v)
		}
		return n, nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("%w: %v", db.ErrInvalidCursor, v)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("%w: %v", db.ErrInvalidCursor, c)
	}
}
