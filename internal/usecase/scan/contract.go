package scan

import (
	"context"

	"github.com/kailas-cloud/dynoscan/internal/db"
)

// TableScanner runs one engine scan call.
type TableScanner interface {
	Scan(ctx context.Context, q *db.ScanQuery) (*db.ScanPage, error)
}
