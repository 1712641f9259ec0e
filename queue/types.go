package queue

// Queue is the uniform contract all three priority-queue variants honor.
// N is the node identifier type; priorities are int64.
//
// Ordering is by priority ascending; ties are broken by insertion order.
// At most one live entry per node exists at any time (I1): DecreaseKey
// replaces the live priority rather than creating a second entry,
// regardless of whether the underlying implementation achieves that by
// mutating in place (BinaryHeap, FibonacciHeap) or by shadowing a stale
// entry (RadixHeap).
type Queue[N comparable] interface {
	// Insert adds n with priority p. Returns ErrDuplicateNode if n is
	// already live.
	Insert(n N, p int64) error

	// ExtractMin removes and returns the live entry with the smallest
	// priority. ok is false if the queue is empty.
	ExtractMin() (n N, p int64, ok bool)

	// Peek returns the live entry with the smallest priority without
	// removing it. ok is false if the queue is empty.
	Peek() (n N, p int64, ok bool)

	// DecreaseKey updates n's priority to p if p is strictly smaller than
	// n's current priority (a no-op otherwise). Returns ErrMissingNode if
	// n is not live.
	DecreaseKey(n N, p int64) error

	// Contains reports whether n currently has a live entry.
	Contains(n N) bool

	// Size returns the number of live entries.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
}

// Variant selects among the three Queue[N] implementations via New.
type Variant int

const (
	// Binary selects a slice-backed min-heap with a position index.
	Binary Variant = iota
	// Fibonacci selects an arena-indexed Fibonacci heap.
	Fibonacci
	// Radix selects a bucketed monotone radix heap; requires maxKey.
	Radix
)

// String implements fmt.Stringer for readable error/log output.
func (v Variant) String() string {
	switch v {
	case Binary:
		return "binary"
	case Fibonacci:
		return "fibonacci"
	case Radix:
		return "radix"
	default:
		return "unknown"
	}
}

// New constructs a Queue[N] of the requested variant. maxKey is only
// consulted for Radix: it must be an upper bound on every priority ever
// inserted (callers typically compute maxEdgeWeight * max(|V|-1, 1) from
// their input graph). Returns ErrUnknownVariant for an unrecognized tag.
func New[N comparable](variant Variant, maxKey int64) (Queue[N], error) {
	switch variant {
	case Binary:
		return NewBinaryHeap[N](), nil
	case Fibonacci:
		return NewFibonacciHeap[N](), nil
	case Radix:
		return NewRadixHeap[N](maxKey), nil
	default:
		return nil, ErrUnknownVariant
	}
}
