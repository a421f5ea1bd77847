package appointment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehr/patientdesk/internal/platform/bounded"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for _, id := range []int{4, 9, 2} {
		require.NoError(t, q.Schedule(id))
	}
	assert.Equal(t, 3, q.Pending())

	for _, want := range []int{4, 9, 2} {
		got, err := q.ProcessNext()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := q.ProcessNext()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.Equal(t, 0, q.Pending())
}

func TestQueue_EmptyFromStart(t *testing.T) {
	q := NewQueue()
	_, err := q.ProcessNext()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.True(t, errors.Is(err, bounded.ErrEmpty))
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, bounded.Capacity, q.Remaining())
}

func TestQueue_FullAfterCapacity(t *testing.T) {
	q := NewQueue()
	for i := 0; i < bounded.Capacity; i++ {
		require.NoError(t, q.Schedule(i))
	}
	assert.Equal(t, 0, q.Remaining())

	err := q.Schedule(99)
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.True(t, errors.Is(err, bounded.ErrFull))
	assert.Equal(t, bounded.Capacity, q.Pending())
}

func TestQueue_NoWraparoundAfterDraining(t *testing.T) {
	q := NewQueue()
	for i := 0; i < bounded.Capacity; i++ {
		require.NoError(t, q.Schedule(i))
	}
	for i := 0; i < bounded.Capacity; i++ {
		got, err := q.ProcessNext()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	assert.Equal(t, 0, q.Pending())
	assert.ErrorIs(t, q.Schedule(42), ErrQueueFull)
	_, err := q.ProcessNext()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestQueue_InterleavedStillFillsAtCapacity(t *testing.T) {
	q := NewQueue()
	scheduled := 0
	for scheduled < bounded.Capacity {
		require.NoError(t, q.Schedule(scheduled))
		scheduled++
		if scheduled%2 == 0 {
			_, err := q.ProcessNext()
			require.NoError(t, err)
		}
	}
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, q.Schedule(100+i), ErrQueueFull)
	}
	assert.Equal(t, bounded.Capacity/2, q.Pending())
}

func TestQueue_FailedScheduleLeavesStateUnchanged(t *testing.T) {
	q := NewQueue()
	for i := 0; i < bounded.Capacity; i++ {
		require.NoError(t, q.Schedule(i))
	}
	before := *q
	require.ErrorIs(t, q.Schedule(7), ErrQueueFull)
	assert.Equal(t, before, *q)
}

func TestQueue_FailedProcessLeavesStateUnchanged(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Schedule(1))
	_, err := q.ProcessNext()
	require.NoError(t, err)

	before := *q
	_, err = q.ProcessNext()
	require.ErrorIs(t, err, ErrQueueEmpty)
	assert.Equal(t, before, *q)
}

func TestQueue_ZeroValueIsEmpty(t *testing.T) {
	var q Queue
	_, err := q.ProcessNext()
	require.ErrorIs(t, err, ErrQueueEmpty)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, bounded.Capacity, q.Remaining())

	for i := 0; i < bounded.Capacity; i++ {
		require.NoError(t, q.Schedule(i))
	}
	assert.ErrorIs(t, q.Schedule(99), ErrQueueFull)

	for i := 0; i < bounded.Capacity; i++ {
		got, err := q.ProcessNext()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	_, err = q.ProcessNext()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}
