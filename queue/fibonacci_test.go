package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFibonacciHeapInsertDuplicateRejected(t *testing.T) {
	h := NewFibonacciHeap[string]()
	require.NoError(t, h.Insert("A", 1))
	require.ErrorIs(t, h.Insert("A", 2), ErrDuplicateNode)
}

func TestFibonacciHeapDecreaseKeyMissingRejected(t *testing.T) {
	h := NewFibonacciHeap[string]()
	require.ErrorIs(t, h.DecreaseKey("A", 1), ErrMissingNode)
}

func TestFibonacciHeapOrderingWithDecreaseKey(t *testing.T) {
	h := NewFibonacciHeap[string]()
	require.NoError(t, h.Insert("A", 10))
	require.NoError(t, h.Insert("B", 20))
	require.NoError(t, h.Insert("C", 30))
	require.NoError(t, h.Insert("D", 40))

	// Force a consolidation with several trees, then promote D via
	// decrease-key past everything else.
	n, _, ok := h.ExtractMin()
	require.True(t, ok)
	require.Equal(t, "A", n)

	require.NoError(t, h.DecreaseKey("D", 1))

	var order []string
	for !h.IsEmpty() {
		nd, _, ok := h.ExtractMin()
		require.True(t, ok)
		order = append(order, nd)
	}
	require.Equal(t, []string{"D", "B", "C"}, order)
}

func TestFibonacciHeapManyInsertsExtractIsSorted(t *testing.T) {
	h := NewFibonacciHeap[int]()
	prios := []int64{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	for i, p := range prios {
		require.NoError(t, h.Insert(i, p))
	}
	var last int64 = -1
	count := 0
	for !h.IsEmpty() {
		_, p, ok := h.ExtractMin()
		require.True(t, ok)
		require.GreaterOrEqual(t, p, last)
		last = p
		count++
	}
	require.Equal(t, len(prios), count)
}

func TestFibonacciHeapReuseSlotsAfterExtraction(t *testing.T) {
	h := NewFibonacciHeap[int]()
	for round := 0; round < 3; round++ {
		for i := 0; i < 5; i++ {
			require.NoError(t, h.Insert(i, int64(5-i)))
		}
		for i := 0; i < 5; i++ {
			_, _, ok := h.ExtractMin()
			require.True(t, ok)
		}
		require.True(t, h.IsEmpty())
	}
}
