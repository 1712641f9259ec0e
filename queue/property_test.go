package queue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// newQueueForProperty builds one instance of each variant so the P1-P3
// properties in SPEC_FULL §8 can be checked identically across all three.
func newQueueForProperty(t *testing.T, variant Variant, maxKey int64) Queue[int] {
	t.Helper()
	q, err := New[int](variant, maxKey)
	require.NoError(t, err)
	return q
}

func TestQueueFactoryUnknownVariant(t *testing.T) {
	_, err := New[int](Variant(99), 10)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

// P1: extracted priorities are non-decreasing, across all three variants.
func TestQueueOrderingIsNonDecreasingAcrossVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	prios := make([]int64, n)
	var maxKey int64
	for i := range prios {
		prios[i] = int64(rng.Intn(1000))
		if prios[i] > maxKey {
			maxKey = prios[i]
		}
	}

	for _, variant := range []Variant{Binary, Fibonacci, Radix} {
		q := newQueueForProperty(t, variant, maxKey)
		for i, p := range prios {
			require.NoError(t, q.Insert(i, p))
		}
		var last int64 = -1
		count := 0
		for !q.IsEmpty() {
			_, p, ok := q.ExtractMin()
			require.True(t, ok)
			require.GreaterOrEqualf(t, p, last, "variant=%s", variant)
			last = p
			count++
		}
		require.Equal(t, n, count, "variant=%s", variant)
	}
}

// P2: Size()/Contains() track live entries exactly, across all three variants.
func TestQueueUniquenessAcrossVariants(t *testing.T) {
	for _, variant := range []Variant{Binary, Fibonacci, Radix} {
		q := newQueueForProperty(t, variant, 100)
		require.NoError(t, q.Insert(1, 10))
		require.NoError(t, q.Insert(2, 20))
		require.True(t, q.Contains(1))
		require.True(t, q.Contains(2))
		require.False(t, q.Contains(3))
		require.Equal(t, 2, q.Size())

		require.ErrorIs(t, q.Insert(1, 5), ErrDuplicateNode)

		_, _, ok := q.ExtractMin()
		require.True(t, ok)
		require.Equal(t, 1, q.Size())
	}
}

// P3: after DecreaseKey(n, p), a subsequent ExtractMin returns n at
// priority <= p no later than any node whose priority exceeds p.
func TestQueueDecreaseKeyMonotonicityAcrossVariants(t *testing.T) {
	for _, variant := range []Variant{Binary, Fibonacci, Radix} {
		q := newQueueForProperty(t, variant, 1000)
		require.NoError(t, q.Insert(1, 100))
		require.NoError(t, q.Insert(2, 50))
		require.NoError(t, q.Insert(3, 75))
		require.NoError(t, q.DecreaseKey(1, 10))

		n, p, ok := q.ExtractMin()
		require.True(t, ok, "variant=%s", variant)
		require.Equal(t, 1, n, "variant=%s", variant)
		require.Equal(t, int64(10), p, "variant=%s", variant)
	}
}
