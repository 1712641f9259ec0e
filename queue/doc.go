// Package queue provides three monotone, node-addressable priority queue
// implementations — binary heap, Fibonacci heap, and bucket-based radix
// heap — behind one uniform Queue[N] contract, plus a factory selecting
// among them by Variant tag.
//
// Overview:
//
//   - Queue[N] is insert / extract-min / decrease-key / contains / size,
//     plus Peek (read the minimum without removing it). At most one live
//     entry per node is ever held; DecreaseKey replaces rather than
//     duplicates conceptually, though the radix heap implements this
//     lazily (see RadixHeap below).
//   - BinaryHeap[N]: slice-backed min-heap with a position index, O(log n)
//     Insert/ExtractMin/DecreaseKey, O(1) Contains.
//   - FibonacciHeap[N]: an arena of indexed nodes (not pointers — see the
//     package comment on fibonacci.go) giving amortized O(1)
//     Insert/DecreaseKey and amortized O(log n) ExtractMin.
//   - RadixHeap[N]: bucketed by the highest bit in which a priority
//     differs from the largest priority extracted so far. Requires non-negative int64 priorities and a
//     caller-supplied upper bound on priorities ever inserted; rejects any
//     Insert/DecreaseKey below the last extracted priority
//     (ErrMonotonicityViolation). DecreaseKey is lazy: a fresh entry is
//     appended and the node index is overwritten, leaving the old entry
//     stale until it is discarded on extraction.
//
// Stale entries:
//
//   - All three implementations may, transiently, hold an entry whose
//     priority no longer reflects the caller's authoritative state (the
//     radix heap's lazy decrease-key always does this; the binary and
//     Fibonacci heaps do not on their own, but a caller performing its own
//     lazy "insert instead of decrease-key" pattern will see the same
//     effect). Queue[N] never hides this: ExtractMin
//     returns exactly what is live in the bucket/heap/tree it is
//     implemented over, and it is the caller's responsibility, on
//     receiving (n, p), to compare p against its own authoritative
//     distance/priority record and discard p if it is worse.
//
// Determinism:
//
//   - BinaryHeap and FibonacciHeap break ties by an internal monotonically
//     increasing insertion counter; RadixHeap keeps entries of equal
//     priority in the order they were appended to their bucket. Either way,
//     two runs over the same Insert/DecreaseKey sequence extract entries in
//     the same order.
package queue
