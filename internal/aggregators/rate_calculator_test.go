package aggregators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nsqtop/internal/models"
)

func snapshotWith(counts map[string]int64) *models.CycleSnapshot {
	snapshot := models.NewCycleSnapshot()
	for key, count := range counts {
		snapshot.Channels[key] = &models.AggregatedChannel{
			Topic:        key,
			Channel:      "ch",
			MessageCount: count,
		}
	}
	return snapshot
}

func TestRateCalculator_DerivesRatesFromElapsedInterval(t *testing.T) {
	t.Parallel()

	current := snapshotWith(map[string]int64{"orders": 130})
	previous := snapshotWith(map[string]int64{"orders": 100})

	NewRateCalculator().Apply(current, previous, 2*time.Second, 2*time.Second)

	assert.InDelta(t, 15.0, current.Channels["orders"].RatePerSecond, 1e-9)
	assert.InDelta(t, 900.0, current.Channels["orders"].RatePerMinute, 1e-9)
}

func TestRateCalculator_ClampsNegativeDelta(t *testing.T) {
	t.Parallel()

	// A broker restart reset the cumulative counter below the previous value.
	current := snapshotWith(map[string]int64{"orders": 10})
	previous := snapshotWith(map[string]int64{"orders": 500})

	NewRateCalculator().Apply(current, previous, 2*time.Second, 2*time.Second)

	assert.Equal(t, 0.0, current.Channels["orders"].RatePerSecond)
	assert.Equal(t, 0.0, current.Channels["orders"].RatePerMinute)
}

func TestRateCalculator_NoPreviousSnapshot(t *testing.T) {
	t.Parallel()

	current := snapshotWith(map[string]int64{"orders": 99999})

	NewRateCalculator().Apply(current, nil, 2*time.Second, 2*time.Second)

	assert.Equal(t, 0.0, current.Channels["orders"].RatePerSecond)
	assert.Equal(t, 0.0, current.Channels["orders"].RatePerMinute)
}

func TestRateCalculator_NewChannelYieldsZeroRate(t *testing.T) {
	t.Parallel()

	current := snapshotWith(map[string]int64{"orders": 100, "clicks": 5000})
	previous := snapshotWith(map[string]int64{"orders": 100})

	NewRateCalculator().Apply(current, previous, 2*time.Second, 2*time.Second)

	// First appearance diffs against itself, no manufactured spike.
	assert.Equal(t, 0.0, current.Channels["clicks"].RatePerSecond)
	assert.Equal(t, 0.0, current.Channels["clicks"].RatePerMinute)
}

func TestRateCalculator_FallsBackToNominalInterval(t *testing.T) {
	t.Parallel()

	current := snapshotWith(map[string]int64{"orders": 130})
	previous := snapshotWith(map[string]int64{"orders": 100})

	NewRateCalculator().Apply(current, previous, 0, 2*time.Second)

	assert.InDelta(t, 15.0, current.Channels["orders"].RatePerSecond, 1e-9)
}

func TestRateCalculator_UsesMeasuredInterval(t *testing.T) {
	t.Parallel()

	current := snapshotWith(map[string]int64{"orders": 160})
	previous := snapshotWith(map[string]int64{"orders": 100})

	// The loop overslept: 4s measured against a nominal 2s interval.
	NewRateCalculator().Apply(current, previous, 4*time.Second, 2*time.Second)

	assert.InDelta(t, 15.0, current.Channels["orders"].RatePerSecond, 1e-9)
}
