package poller

import (
	"nsqtop/internal/shared/metrics"
)

var (
	// metricPollCyclesTotal counts completed cycles, labelled with the
	// resolution failure code (empty when the cycle rendered data).
	metricPollCyclesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "cycles_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricPollBrokers = metrics.NewGauge(metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubPoll,
		Name:      "brokers",
	})

	metricPollChannels = metrics.NewGauge(metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubPoll,
		Name:      "channels",
	})

	metricPollTotalDepth = metrics.NewGauge(metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubPoll,
		Name:      "total_depth",
	})

	metricPollTotalInFlight = metrics.NewGauge(metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubPoll,
		Name:      "total_in_flight",
	})
)
