// File: binary.go
// Role: §4.B1 binary heap — slice-backed min-heap plus a position index.
// Determinism: ties broken by an insertion-order sequence counter.
// AI-HINT (file): position[n] always mirrors n's current slot in data;
//   every swap in siftUp/siftDown must update position for both swapped
//   entries, or Contains/DecreaseKey silently desynchronize.
package queue

// binaryEntry is one live (node, priority) pair plus its insertion-order
// tie-break key.
type binaryEntry[N comparable] struct {
	node N
	prio int64
	seq  uint64
}

// BinaryHeap is a slice-backed min-heap with an auxiliary position map,
// giving O(log n) Insert/ExtractMin/DecreaseKey and O(1) Contains.
type BinaryHeap[N comparable] struct {
	data     []binaryEntry[N]
	position map[N]int
	seq      uint64
}

// NewBinaryHeap creates an empty BinaryHeap.
func NewBinaryHeap[N comparable]() *BinaryHeap[N] {
	return &BinaryHeap[N]{position: make(map[N]int)}
}

func (h *BinaryHeap[N]) less(i, j int) bool {
	a, b := h.data[i], h.data[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.seq < b.seq
}

func (h *BinaryHeap[N]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.position[h.data[i].node] = i
	h.position[h.data[j].node] = j
}

func (h *BinaryHeap[N]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *BinaryHeap[N]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Insert implements Queue[N].
func (h *BinaryHeap[N]) Insert(n N, p int64) error {
	if _, ok := h.position[n]; ok {
		return ErrDuplicateNode
	}
	h.data = append(h.data, binaryEntry[N]{node: n, prio: p, seq: h.seq})
	h.seq++
	idx := len(h.data) - 1
	h.position[n] = idx
	h.siftUp(idx)
	return nil
}

// ExtractMin implements Queue[N].
func (h *BinaryHeap[N]) ExtractMin() (N, int64, bool) {
	if len(h.data) == 0 {
		var zero N
		return zero, 0, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.swap(0, last)
	h.data = h.data[:last]
	delete(h.position, top.node)
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top.node, top.prio, true
}

// Peek implements Queue[N].
func (h *BinaryHeap[N]) Peek() (N, int64, bool) {
	if len(h.data) == 0 {
		var zero N
		return zero, 0, false
	}
	top := h.data[0]
	return top.node, top.prio, true
}

// DecreaseKey implements Queue[N].
func (h *BinaryHeap[N]) DecreaseKey(n N, p int64) error {
	idx, ok := h.position[n]
	if !ok {
		return ErrMissingNode
	}
	if p >= h.data[idx].prio {
		return nil
	}
	h.data[idx].prio = p
	h.siftUp(idx)
	return nil
}

// Contains implements Queue[N].
func (h *BinaryHeap[N]) Contains(n N) bool {
	_, ok := h.position[n]
	return ok
}

// Size implements Queue[N].
func (h *BinaryHeap[N]) Size() int { return len(h.data) }

// IsEmpty implements Queue[N].
func (h *BinaryHeap[N]) IsEmpty() bool { return len(h.data) == 0 }
