package impex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsTotal counts processed records by element and outcome.
	RecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "impex",
			Subsystem: "import",
			Name:      "records_total",
			Help:      "Total number of import records by element and outcome",
		},
		[]string{"element", "outcome"},
	)

	// RecordDuration tracks the reconciliation time of one record.
	RecordDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "impex",
			Subsystem: "import",
			Name:      "record_duration_seconds",
			Help:      "Duration of the reconciliation of one record in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"element"},
	)

	// DocumentsTotal counts imported documents by status.
	DocumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "impex",
			Subsystem: "import",
			Name:      "documents_total",
			Help:      "Total number of imported documents by status",
		},
		[]string{"status"},
	)
)
