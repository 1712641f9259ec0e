package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadixHeapOrdering(t *testing.T) {
	r := NewRadixHeap[string](100)
	require.NoError(t, r.Insert("C", 30))
	require.NoError(t, r.Insert("A", 5))
	require.NoError(t, r.Insert("B", 17))

	var order []int64
	for !r.IsEmpty() {
		_, p, ok := r.ExtractMin()
		require.True(t, ok)
		order = append(order, p)
	}
	require.Equal(t, []int64{5, 17, 30}, order)
}

func TestRadixHeapRejectsBelowLastExtracted(t *testing.T) {
	r := NewRadixHeap[string](100)
	require.NoError(t, r.Insert("A", 10))
	_, _, _ = r.ExtractMin() // lastExtracted == 10

	require.ErrorIs(t, r.Insert("B", 5), ErrMonotonicityViolation)
}

func TestRadixHeapRejectsNegativePriority(t *testing.T) {
	r := NewRadixHeap[string](100)
	require.ErrorIs(t, r.Insert("A", -1), ErrNegativePriority)
}

func TestRadixHeapLazyDecreaseKeyDiscardsStale(t *testing.T) {
	r := NewRadixHeap[string](1000)
	require.NoError(t, r.Insert("A", 50))
	require.NoError(t, r.Insert("B", 60))
	require.NoError(t, r.DecreaseKey("A", 10))

	n, p, ok := r.ExtractMin()
	require.True(t, ok)
	require.Equal(t, "A", n)
	require.Equal(t, int64(10), p)
	require.Equal(t, 1, r.Size())

	n, p, ok = r.ExtractMin()
	require.True(t, ok)
	require.Equal(t, "B", n)
	require.Equal(t, int64(60), p)
}

func TestRadixHeapMonotoneExtractionAcrossManyInserts(t *testing.T) {
	r := NewRadixHeap[int](1000)
	prios := []int64{42, 7, 900, 3, 3, 500, 1, 999, 0, 250}
	for i, p := range prios {
		require.NoError(t, r.Insert(i, p))
	}
	var last int64 = -1
	for !r.IsEmpty() {
		_, p, ok := r.ExtractMin()
		require.True(t, ok)
		require.GreaterOrEqual(t, p, last)
		last = p
	}
}

func TestRadixHeapDecreaseKeyMissingRejected(t *testing.T) {
	r := NewRadixHeap[string](100)
	require.ErrorIs(t, r.DecreaseKey("A", 1), ErrMissingNode)
}
