package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Scan Prometheus metrics.
var (
	ScanRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_requests_total",
			Help:      "Total number of engine scan calls",
		},
		[]string{"engine", "status"},
	)

	ScanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Engine scan call duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"engine"},
	)

	ScanItemsScannedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_items_scanned_total",
			Help:      "Records examined by the engine before filtering",
		},
		[]string{"engine"},
	)

	ScanItemsMatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_items_matched_total",
			Help:      "Records that passed the engine-side filter",
		},
		[]string{"engine"},
	)
)

var scanOnce sync.Once

// RegisterScanMetrics registers Prometheus scan metrics. Safe to call more than once.
func RegisterScanMetrics() {
	scanOnce.Do(func() {
		prometheus.MustRegister(ScanRequestsTotal)
		prometheus.MustRegister(ScanDuration)
		prometheus.MustRegister(ScanItemsScannedTotal)
		prometheus.MustRegister(ScanItemsMatchedTotal)
	})
}
