package db

import (
	"context"
	"time"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

// Engine is the facade every storage backend implements.
type Engine interface {
	Pinger
	Scanner
	// Name identifies the backend in logs and metrics.
	Name() string
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks engine connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Scanner runs one engine-native scan call.
type Scanner interface {
	Scan(ctx context.Context, q *ScanQuery) (*ScanPage, error)
}

// ScanQuery is the input of a single scan call.
type ScanQuery struct {
	Filter   filter.Expression
	StartKey cursor.Cursor
}

// ScanPage is one engine batch. Its size is decided by the engine, not the caller.
type ScanPage struct {
	Items        []map[string]any
	LastKey      cursor.Cursor
	ScannedCount int
}
