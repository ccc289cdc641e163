package aggregators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsqtop/internal/models"
)

func rankedSnapshot() *models.CycleSnapshot {
	snapshot := models.NewCycleSnapshot()
	for _, channel := range []*models.AggregatedChannel{
		{Topic: "orders", Channel: "billing", Depth: 50},
		{Topic: "clicks", Channel: "archive", Depth: 200},
		{Topic: "orders", Channel: "audit", Depth: 50},
		{Topic: "events", Channel: "fanout", Depth: 0},
	} {
		snapshot.Channels[channel.Key()] = channel
	}
	return snapshot
}

func TestRank_SortsByDepthDescending(t *testing.T) {
	t.Parallel()

	ranked := Rank(rankedSnapshot())

	require.Len(t, ranked, 4)
	assert.Equal(t, "clicks/archive", ranked[0].Key())
	assert.Equal(t, "events/fanout", ranked[3].Key())
}

func TestRank_BreaksTiesByKey(t *testing.T) {
	t.Parallel()

	ranked := Rank(rankedSnapshot())

	// orders/audit and orders/billing both have depth 50.
	assert.Equal(t, "orders/audit", ranked[1].Key())
	assert.Equal(t, "orders/billing", ranked[2].Key())
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	first := Rank(rankedSnapshot())
	for i := 0; i < 20; i++ {
		again := Rank(rankedSnapshot())
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Key(), again[j].Key())
		}
	}
}
