package aggregators

import (
	"time"

	"nsqtop/internal/models"
)

// RateCalculator derives per-second and per-minute message rates by diffing
// a cycle's cumulative message counters against the previous cycle's.
type RateCalculator interface {
	// Apply annotates every channel in current with its rates. previous is
	// nil on the first cycle and after a resolution failure; then all rates
	// are zero. elapsed is the measured wall-clock interval since the
	// previous cycle; when it is not strictly positive the nominal configured
	// interval is used instead.
	Apply(current, previous *models.CycleSnapshot, elapsed, nominal time.Duration)
}

type rateCalculator struct{}

func NewRateCalculator() RateCalculator {
	return &rateCalculator{}
}

func (r *rateCalculator) Apply(current, previous *models.CycleSnapshot, elapsed, nominal time.Duration) {
	if previous == nil {
		for _, channel := range current.Channels {
			channel.RatePerSecond = 0
			channel.RatePerMinute = 0
		}
		return
	}

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = nominal.Seconds()
	}

	for key, channel := range current.Channels {
		// A channel absent from the previous cycle diffs against itself:
		// its first appearance must not read as a throughput spike.
		previousCount := channel.MessageCount
		if previousChannel, exists := previous.Channels[key]; exists {
			previousCount = previousChannel.MessageCount
		}

		// Broker restarts reset the cumulative counter; a channel migrating
		// between brokers can shrink it too. Clamp instead of reporting
		// negative throughput.
		delta := channel.MessageCount - previousCount
		if delta < 0 {
			delta = 0
		}

		channel.RatePerSecond = float64(delta) / seconds
		channel.RatePerMinute = channel.RatePerSecond * 60
	}
}
