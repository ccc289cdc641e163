package stats

import (
	"nsqtop/internal/shared/metrics"
)

const codeStatsFetchFailed = "STATS_1000"

var (
	// metricStatsFetchTotal counts per-broker /stats fetch attempts,
	// labelled with the failure code (empty on success).
	metricStatsFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "fetch_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
