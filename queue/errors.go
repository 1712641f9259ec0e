package queue

import "errors"

// Sentinel errors returned by the queue implementations and factory.
var (
	// ErrDuplicateNode is returned by Insert when the node is already live.
	ErrDuplicateNode = errors.New("queue: node already present")

	// ErrMissingNode is returned by DecreaseKey when the node is not live.
	ErrMissingNode = errors.New("queue: node not present")

	// ErrMonotonicityViolation is returned by RadixHeap.Insert/DecreaseKey
	// when the given priority is below the last extracted priority.
	ErrMonotonicityViolation = errors.New("queue: priority below last extracted value violates radix heap monotonicity")

	// ErrNegativePriority is returned by RadixHeap.Insert when the given
	// priority is negative; the radix heap requires non-negative integer
	// priorities (SPEC §4.B3). RadixHeap.DecreaseKey reports a negative
	// priority as ErrMonotonicityViolation instead.
	ErrNegativePriority = errors.New("queue: radix heap requires non-negative priorities")

	// ErrUnknownVariant is returned by New for an unrecognized Variant tag.
	ErrUnknownVariant = errors.New("queue: unknown queue variant")
)
