package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ReportsBuilt  prometheus.Counter
	FetchFailures prometheus.Counter
	RowsSkipped   *prometheus.CounterVec
	BuildTime     prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ReportsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_built_total",
			Help:      "The total number of dashboard reports built",
		}),
		FetchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_fetch_failures_total",
			Help:      "The total number of failed sheet fetches",
		}),
		RowsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_derivations_skipped_total",
			Help:      "The total number of row derivations skipped or degraded",
		}, []string{"derivation"}),
		BuildTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_time_seconds",
			Help:      "Time taken to build one report",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
