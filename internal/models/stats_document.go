package models

// ChannelStats is the per-channel slice of one broker's /stats document.
// message_count is a monotonic cumulative counter; it resets when the
// broker restarts. Optional fields absent from older nsqd versions decode
// to zero.
type ChannelStats struct {
	ChannelName   string `json:"channel_name"`
	Depth         int64  `json:"depth"`
	BackendDepth  int64  `json:"backend_depth"`
	InFlightCount int64  `json:"in_flight_count"`
	MessageCount  int64  `json:"message_count"`
}

type TopicStats struct {
	TopicName string         `json:"topic_name"`
	Channels  []ChannelStats `json:"channels"`
}

// StatsDocument is the normalized statistics snapshot of a single broker.
// The fetcher flattens both wire shapes (topics at the top level, or nested
// under a "data" key) into this one form.
type StatsDocument struct {
	Topics []TopicStats `json:"topics"`
}
