package scan

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	logpkg "github.com/kailas-cloud/dynoscan/internal/logger"
)

// Service translates scan requests into one engine call each.
type Service struct {
	table TableScanner
}

// New creates a scan service bound to one table handle.
func New(table TableScanner) *Service {
	return &Service{table: table}
}

// Scan issues exactly one engine scan and returns at most req.Limit() items
// from the batch. The engine's cursor and scanned count are returned as-is,
// so a page may be short even when more matches exist further on.
func (s *Service) Scan(ctx context.Context, req request.Request) (result.Result, error) {
	page, err := s.table.Scan(ctx, &db.ScanQuery{
		Filter:   req.Filter(),
		StartKey: req.StartKey(),
	})
	if err != nil {
		if errors.Is(err, db.ErrInvalidCursor) {
			return result.Result{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
		}
		return result.Result{}, fmt.Errorf("%w: scan table: %w", domain.ErrEngine, err)
	}

	n := len(page.Items)
	if n > req.Limit() {
		n = req.Limit()
	}
	items := make([]result.Item, n)
	for i := 0; i < n; i++ {
		items[i] = result.Item(page.Items[i])
	}

	res := result.New(items, page.LastKey, page.ScannedCount)

	logpkg.FromContext(ctx).Debug("Scan completed",
		zap.Int("clauses", req.Filter().Len()),
		zap.Int("limit", req.Limit()),
		zap.Int("matched", len(page.Items)),
		zap.Int("returned", res.Count()),
		zap.Int("scanned", res.ScannedCount()),
		zap.Bool("has_more", res.HasMore()),
	)

	return res, nil
}
