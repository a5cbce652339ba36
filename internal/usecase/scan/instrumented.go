package scan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/metrics"
)

// InstrumentedScanner wraps a TableScanner with metrics and error logging.
type InstrumentedScanner struct {
	inner  TableScanner
	engine string
	logger *zap.Logger
}

// NewInstrumentedScanner wraps inner; engine labels every metric.
func NewInstrumentedScanner(inner TableScanner, engine string, logger *zap.Logger) *InstrumentedScanner {
	return &InstrumentedScanner{inner: inner, engine: engine, logger: logger}
}

// Scan delegates to the inner scanner and records the outcome.
func (p *InstrumentedScanner) Scan(ctx context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	start := time.Now()

	page, err := p.inner.Scan(ctx, q)

	duration := time.Since(start)
	metrics.ScanDuration.WithLabelValues(p.engine).Observe(duration.Seconds())

	if err != nil {
		metrics.ScanRequestsTotal.WithLabelValues(p.engine, "error").Inc()
		p.logger.Error("Engine scan failed",
			zap.String("engine", p.engine),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.ScanRequestsTotal.WithLabelValues(p.engine, "ok").Inc()
	metrics.ScanItemsScannedTotal.WithLabelValues(p.engine).Add(float64(page.ScannedCount))
	metrics.ScanItemsMatchedTotal.WithLabelValues(p.engine).Add(float64(len(page.Items)))

	return page, nil
}
