package lookup

import (
	"nsqtop/internal/shared/metrics"
)

var (
	// metricLookupRequestsTotal counts /nodes queries per lookupd address,
	// labelled with the failure code (empty on success).
	metricLookupRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLookup,
			Name:      "requests_total",
		},
		[]string{"address", metrics.FieldErrorCode},
	)
)
