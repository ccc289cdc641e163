package models

// ChannelKey builds the stable identity used to correlate a channel across
// brokers and across polling cycles. Topic names cannot contain "/", so the
// key cannot collide for distinct (topic, channel) pairs.
func ChannelKey(topic, channel string) string {
	return topic + "/" + channel
}

// AggregatedChannel is the cluster-wide merged view of one topic/channel
// pair for a single cycle. Depth is the sum of depth+backend_depth over
// every broker hosting the channel.
type AggregatedChannel struct {
	Topic         string
	Channel       string
	Depth         int64
	InFlightCount int64
	MessageCount  int64
	RatePerSecond float64
	RatePerMinute float64
}

func (c *AggregatedChannel) Key() string {
	return ChannelKey(c.Topic, c.Channel)
}
