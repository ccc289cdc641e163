package aggregators

import (
	"nsqtop/internal/models"
)

// Aggregator folds the per-broker stats documents of one cycle into a
// cluster-wide CycleSnapshot keyed by topic/channel. The fold uses
// commutative sums only, so the processing order of brokers, topics and
// channels never affects the result.
type Aggregator interface {
	Aggregate(documents []models.StatsDocument) *models.CycleSnapshot
}

type aggregator struct{}

func NewAggregator() Aggregator {
	return &aggregator{}
}

func (a *aggregator) Aggregate(documents []models.StatsDocument) *models.CycleSnapshot {
	snapshot := models.NewCycleSnapshot()

	for _, document := range documents {
		for _, topic := range document.Topics {
			for _, channel := range topic.Channels {
				key := models.ChannelKey(topic.TopicName, channel.ChannelName)

				entry, exists := snapshot.Channels[key]
				if !exists {
					entry = &models.AggregatedChannel{
						Topic:   topic.TopicName,
						Channel: channel.ChannelName,
					}
					snapshot.Channels[key] = entry
				}

				// depth and backend_depth are two components of the same
				// backlog (memory vs disk overflow) and are summed as the
				// stats endpoint reports them.
				entry.Depth += channel.Depth + channel.BackendDepth
				entry.InFlightCount += channel.InFlightCount
				entry.MessageCount += channel.MessageCount
				snapshot.TotalInFlight += channel.InFlightCount
			}
		}
	}

	return snapshot
}
