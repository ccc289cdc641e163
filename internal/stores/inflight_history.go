package stores

// InFlightHistory is a bounded FIFO window of cluster-wide total in-flight
// samples, one per cycle, kept for the trend sparkline. Appending past the
// bound drops the oldest sample.
type InFlightHistory struct {
	values   []int64
	capacity int
}

const DefaultHistoryLength = 60

func NewInFlightHistory(capacity int) *InFlightHistory {
	if capacity <= 0 {
		capacity = DefaultHistoryLength
	}
	return &InFlightHistory{
		values:   make([]int64, 0, capacity),
		capacity: capacity,
	}
}

func (h *InFlightHistory) Append(value int64) {
	h.values = append(h.values, value)
	if len(h.values) > h.capacity {
		h.values = h.values[1:]
	}
}

func (h *InFlightHistory) Len() int {
	return len(h.values)
}

// Values returns a copy so callers cannot alias the window.
func (h *InFlightHistory) Values() []int64 {
	out := make([]int64, len(h.values))
	copy(out, h.values)
	return out
}
