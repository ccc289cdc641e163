package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsqtop/internal/models"
)

func TestCycleStore_FirstSwapHasNoPrevious(t *testing.T) {
	t.Parallel()

	store := NewCycleStore()

	previous, elapsed := store.Swap(models.NewCycleSnapshot(), time.Now())

	assert.Nil(t, previous)
	assert.Equal(t, time.Duration(0), elapsed)
}

func TestCycleStore_SwapReturnsDisplacedSnapshotAndMeasuredInterval(t *testing.T) {
	t.Parallel()

	store := NewCycleStore()
	first := models.NewCycleSnapshot()
	second := models.NewCycleSnapshot()

	t0 := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	store.Swap(first, t0)
	previous, elapsed := store.Swap(second, t0.Add(2300*time.Millisecond))

	require.Same(t, first, previous)
	assert.Equal(t, 2300*time.Millisecond, elapsed)
}

func TestCycleStore_ResetDropsBaseline(t *testing.T) {
	t.Parallel()

	store := NewCycleStore()
	t0 := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	store.Swap(models.NewCycleSnapshot(), t0)

	store.Reset()

	previous, elapsed := store.Swap(models.NewCycleSnapshot(), t0.Add(2*time.Second))
	assert.Nil(t, previous)
	assert.Equal(t, time.Duration(0), elapsed)
}
