package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlightHistory_NeverExceedsBound(t *testing.T) {
	t.Parallel()

	history := NewInFlightHistory(3)
	for i := int64(0); i < 10; i++ {
		history.Append(i)
		assert.LessOrEqual(t, history.Len(), 3)
	}
}

func TestInFlightHistory_EvictsOldestFirst(t *testing.T) {
	t.Parallel()

	history := NewInFlightHistory(3)
	for _, value := range []int64{1, 2, 3, 4} {
		history.Append(value)
	}

	assert.Equal(t, []int64{2, 3, 4}, history.Values())
}

func TestInFlightHistory_ValuesReturnsCopy(t *testing.T) {
	t.Parallel()

	history := NewInFlightHistory(3)
	history.Append(7)

	values := history.Values()
	require.Len(t, values, 1)
	values[0] = 99

	assert.Equal(t, []int64{7}, history.Values())
}

func TestInFlightHistory_DefaultCapacity(t *testing.T) {
	t.Parallel()

	history := NewInFlightHistory(0)
	for i := int64(0); i < 100; i++ {
		history.Append(i)
	}

	assert.Equal(t, DefaultHistoryLength, history.Len())
}
