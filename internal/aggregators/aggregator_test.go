package aggregators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsqtop/internal/models"
)

func brokerDocuments() []models.StatsDocument {
	return []models.StatsDocument{
		{
			Topics: []models.TopicStats{
				{
					TopicName: "orders",
					Channels: []models.ChannelStats{
						{ChannelName: "billing", Depth: 10, BackendDepth: 5, InFlightCount: 2, MessageCount: 100},
						{ChannelName: "audit", Depth: 1, BackendDepth: 0, InFlightCount: 0, MessageCount: 40},
					},
				},
			},
		},
		{
			Topics: []models.TopicStats{
				{
					TopicName: "orders",
					Channels: []models.ChannelStats{
						{ChannelName: "billing", Depth: 20, BackendDepth: 15, InFlightCount: 3, MessageCount: 200},
					},
				},
				{
					TopicName: "clicks",
					Channels: []models.ChannelStats{
						{ChannelName: "archive", Depth: 7, BackendDepth: 0, InFlightCount: 1, MessageCount: 9},
					},
				},
			},
		},
	}
}

func TestAggregator_MergesChannelsAcrossBrokers(t *testing.T) {
	t.Parallel()

	snapshot := NewAggregator().Aggregate(brokerDocuments())

	require.Len(t, snapshot.Channels, 3)

	billing := snapshot.Channels["orders/billing"]
	require.NotNil(t, billing)
	assert.Equal(t, "orders", billing.Topic)
	assert.Equal(t, "billing", billing.Channel)
	// depth accumulates depth+backend_depth from both brokers: (10+5)+(20+15)
	assert.Equal(t, int64(50), billing.Depth)
	assert.Equal(t, int64(5), billing.InFlightCount)
	assert.Equal(t, int64(300), billing.MessageCount)

	audit := snapshot.Channels["orders/audit"]
	require.NotNil(t, audit)
	assert.Equal(t, int64(1), audit.Depth)

	assert.Equal(t, int64(6), snapshot.TotalInFlight)
}

func TestAggregator_OrderIndependent(t *testing.T) {
	t.Parallel()

	documents := brokerDocuments()
	reversed := []models.StatsDocument{documents[1], documents[0]}

	forward := NewAggregator().Aggregate(documents)
	backward := NewAggregator().Aggregate(reversed)

	assert.Equal(t, forward.TotalInFlight, backward.TotalInFlight)
	require.Equal(t, len(forward.Channels), len(backward.Channels))
	for key, channel := range forward.Channels {
		other := backward.Channels[key]
		require.NotNil(t, other, "missing channel %s", key)
		assert.Equal(t, *channel, *other)
	}
}

func TestAggregator_EmptyInput(t *testing.T) {
	t.Parallel()

	snapshot := NewAggregator().Aggregate(nil)

	assert.Empty(t, snapshot.Channels)
	assert.Equal(t, int64(0), snapshot.TotalInFlight)
}

func TestAggregator_DepthNeverNegative(t *testing.T) {
	t.Parallel()

	snapshot := NewAggregator().Aggregate([]models.StatsDocument{
		{
			Topics: []models.TopicStats{
				{
					TopicName: "t",
					Channels: []models.ChannelStats{
						{ChannelName: "c", Depth: 0, BackendDepth: 0, InFlightCount: 0, MessageCount: 0},
					},
				},
			},
		},
	})

	for _, channel := range snapshot.Channels {
		assert.GreaterOrEqual(t, channel.Depth, int64(0))
		assert.GreaterOrEqual(t, channel.InFlightCount, int64(0))
		assert.GreaterOrEqual(t, channel.MessageCount, int64(0))
	}
}
