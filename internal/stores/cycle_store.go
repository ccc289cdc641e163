package stores

import (
	"time"

	"nsqtop/internal/models"
)

// CycleStore owns the previous cycle's snapshot, the only state the rate
// calculation needs across cycles. The poll loop is its sole caller; the
// snapshot is swapped wholesale, never mutated in place.
type CycleStore struct {
	previous   *models.CycleSnapshot
	sampledAt  time.Time
	hasSampled bool
}

func NewCycleStore() *CycleStore {
	return &CycleStore{}
}

// Swap replaces the stored snapshot with next (sampled at now) and returns
// the displaced snapshot together with the measured interval since it was
// taken. The returned snapshot is nil and elapsed zero on the first call.
func (s *CycleStore) Swap(next *models.CycleSnapshot, now time.Time) (previous *models.CycleSnapshot, elapsed time.Duration) {
	if s.hasSampled {
		previous = s.previous
		elapsed = now.Sub(s.sampledAt)
	}
	s.previous = next
	s.sampledAt = now
	s.hasSampled = true
	return previous, elapsed
}

// Reset drops the stored snapshot so the next cycle computes no rates.
// Called after a total resolution failure: diffing across a gap would
// attribute the whole gap's traffic to one interval.
func (s *CycleStore) Reset() {
	s.previous = nil
	s.hasSampled = false
}
