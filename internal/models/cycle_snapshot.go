package models

// CycleSnapshot is the output of one polling cycle's aggregation: every
// channel seen on at least one broker this cycle, keyed by ChannelKey, plus
// the cluster-wide in-flight total. It is replaced wholesale each cycle and
// never mutated after the rate pass.
type CycleSnapshot struct {
	Channels      map[string]*AggregatedChannel
	TotalInFlight int64
}

func NewCycleSnapshot() *CycleSnapshot {
	return &CycleSnapshot{Channels: make(map[string]*AggregatedChannel)}
}
