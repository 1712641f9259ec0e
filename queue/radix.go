// File: radix.go
// Role: §4.B3 monotone radix heap — bucketed by distance from the largest
//       priority extracted so far; requires non-negative int64 priorities
//       and a caller-supplied upper bound on priorities ever inserted.
// AI-HINT (file): bucket i (i>=1) holds live entries with priority p whose
//   highest bit differing from lastExtracted is bit i-1, i.e.
//   bits.Len64(p XOR lastExtracted) == i; bucket 0 holds exactly
//   p == lastExtracted. Raising lastExtracted to the minimum of bucket i
//   leaves every entry in a bucket above i in the same bucket, so only
//   bucket i needs redistributing. DecreaseKey is lazy — it appends a fresh
//   entry and repoints the node-index entry at it, leaving the old entry
//   in its bucket to be discarded on sight the next time that bucket is
//   scanned (isLive compares against the node index, not bucket contents).
package queue

import "math/bits"

// radixEntry is one (possibly stale) bucket slot.
type radixEntry[N comparable] struct {
	node N
	prio int64
}

// radixRef is the authoritative (priority, bucket) pair for a live node;
// any radixEntry whose (prio, bucket) does not match its node's radixRef
// is stale and is discarded wherever it is encountered.
type radixRef struct {
	prio   int64
	bucket int
}

// RadixHeap is the bucket-based monotone priority queue of SPEC §4.B3.
// Monotonicity violations and negative priorities are reported as errors,
// not panics. A priority above the maxKey given to NewRadixHeap is not
// checked: it can map past the last bucket and panic with an index out of
// range.
type RadixHeap[N comparable] struct {
	buckets       [][]radixEntry[N]
	index         map[N]radixRef
	lastExtracted int64
	size          int
}

// bucketCountFor computes B = floor(log2(maxKey)) + 2, never less than 2.
func bucketCountFor(maxKey int64) int {
	if maxKey < 1 {
		maxKey = 1
	}
	count := bits.Len64(uint64(maxKey)) + 1
	if count < 2 {
		count = 2
	}
	return count
}

// bucketIndexFor returns the bucket a priority p belongs to relative to
// last, assuming p >= last: 0 if p == last, else floor(log2(p XOR last)) + 1.
func bucketIndexFor(p, last int64) int {
	if p == last {
		return 0
	}
	return bits.Len64(uint64(p ^ last))
}

// NewRadixHeap creates an empty RadixHeap sized for priorities up to
// maxKey (an upper bound on every priority ever inserted, e.g.
// maxEdgeWeight * max(|V|-1, 1) for a shortest-path run).
func NewRadixHeap[N comparable](maxKey int64) *RadixHeap[N] {
	return &RadixHeap[N]{
		buckets: make([][]radixEntry[N], bucketCountFor(maxKey)),
		index:   make(map[N]radixRef),
	}
}

func (r *RadixHeap[N]) isLive(e radixEntry[N], bucket int) bool {
	ref, ok := r.index[e.node]
	return ok && ref.prio == e.prio && ref.bucket == bucket
}

// Insert implements Queue[N].
func (r *RadixHeap[N]) Insert(n N, p int64) error {
	if p < 0 {
		return ErrNegativePriority
	}
	if p < r.lastExtracted {
		return ErrMonotonicityViolation
	}
	if _, ok := r.index[n]; ok {
		return ErrDuplicateNode
	}
	bucket := bucketIndexFor(p, r.lastExtracted)
	r.buckets[bucket] = append(r.buckets[bucket], radixEntry[N]{node: n, prio: p})
	r.index[n] = radixRef{prio: p, bucket: bucket}
	r.size++
	return nil
}

// DecreaseKey implements Queue[N]. It is lazy: the prior entry for n is
// left in its bucket and discarded on sight later.
func (r *RadixHeap[N]) DecreaseKey(n N, p int64) error {
	ref, ok := r.index[n]
	if !ok {
		return ErrMissingNode
	}
	if p < 0 || p < r.lastExtracted {
		return ErrMonotonicityViolation
	}
	if p >= ref.prio {
		return nil
	}
	bucket := bucketIndexFor(p, r.lastExtracted)
	r.buckets[bucket] = append(r.buckets[bucket], radixEntry[N]{node: n, prio: p})
	r.index[n] = radixRef{prio: p, bucket: bucket}
	return nil
}

// refill locates the lowest non-empty bucket beyond 0, sets lastExtracted
// to the minimum live priority found there, and redistributes that
// bucket's live entries across buckets 0..(that bucket) under the new
// bounds. Returns false if no live entry exists anywhere beyond bucket 0.
func (r *RadixHeap[N]) refill() bool {
	for i := 1; i < len(r.buckets); i++ {
		if len(r.buckets[i]) == 0 {
			continue
		}
		found := false
		var minPrio int64
		for _, e := range r.buckets[i] {
			if !r.isLive(e, i) {
				continue
			}
			if !found || e.prio < minPrio {
				minPrio = e.prio
				found = true
			}
		}
		if !found {
			r.buckets[i] = nil
			continue
		}
		r.lastExtracted = minPrio
		old := r.buckets[i]
		r.buckets[i] = nil
		for _, e := range old {
			if !r.isLive(e, i) {
				continue
			}
			nb := bucketIndexFor(e.prio, r.lastExtracted)
			r.buckets[nb] = append(r.buckets[nb], e)
			r.index[e.node] = radixRef{prio: e.prio, bucket: nb}
		}
		return true
	}
	return false
}

// ExtractMin implements Queue[N].
func (r *RadixHeap[N]) ExtractMin() (N, int64, bool) {
	for {
		if len(r.buckets[0]) == 0 {
			if !r.refill() {
				var zero N
				return zero, 0, false
			}
		}
		e := r.buckets[0][0]
		r.buckets[0] = r.buckets[0][1:]
		if !r.isLive(e, 0) {
			continue
		}
		delete(r.index, e.node)
		r.size--
		r.lastExtracted = e.prio
		return e.node, e.prio, true
	}
}

// Peek implements Queue[N]; it does not mutate bucket contents.
func (r *RadixHeap[N]) Peek() (N, int64, bool) {
	for _, e := range r.buckets[0] {
		if r.isLive(e, 0) {
			return e.node, e.prio, true
		}
	}
	for i := 1; i < len(r.buckets); i++ {
		found := false
		var bestNode N
		var bestPrio int64
		for _, e := range r.buckets[i] {
			if !r.isLive(e, i) {
				continue
			}
			if !found || e.prio < bestPrio {
				bestNode, bestPrio, found = e.node, e.prio, true
			}
		}
		if found {
			return bestNode, bestPrio, true
		}
	}
	var zero N
	return zero, 0, false
}

// Contains implements Queue[N].
func (r *RadixHeap[N]) Contains(n N) bool {
	_, ok := r.index[n]
	return ok
}

// Size implements Queue[N].
func (r *RadixHeap[N]) Size() int { return r.size }

// IsEmpty implements Queue[N].
func (r *RadixHeap[N]) IsEmpty() bool { return r.size == 0 }
