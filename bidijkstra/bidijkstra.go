// File: bidijkstra.go
// Role: skew-balanced bidirectional Dijkstra over graph.View[N] — two
//       coupled frontiers racing toward each other, yielding the shortest
//       s->t distance without ever building a full single-source tree.
// Determinism: fully determined by g, s, t, the queue variant, and sigma;
//   successor/predecessor order and the queue's insertion-order tie-break
//   make repeated runs produce identical results.
// Concurrency: a Search owns its two queues and distance maps; concurrent
//   searches over the same graph.View[N] do not interfere.
// AI-HINT (file): termination is driven by min_f + min_b >= mu, not by
//   either frontier settling its target — mu is updated opportunistically
//   every time a relaxed node is already known on the opposite side.
package bidijkstra

import (
	"math"

	"github.com/wayfare-dev/pathkit/graph"
	"github.com/wayfare-dev/pathkit/queue"
)

// infinity is the +∞ sentinel FindShortestPath returns when no s->t path
// exists.
const infinity = math.MaxInt64

// Search runs a single skew-balanced bidirectional Dijkstra query.
// Construct with New and call FindShortestPath.
type Search[N comparable] struct {
	g    graph.View[N]
	opts Options
}

// New prepares a Search over g. g is not mutated or copied; FindShortestPath
// may be called any number of times, each with fresh internal state.
func New[N comparable](g graph.View[N], opts ...Option) *Search[N] {
	o := newOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Search[N]{g: g, opts: o}
}

// FindShortestPath returns the shortest s->t distance, or infinity
// (math.MaxInt64) if no such path exists. s == t returns 0 without
// touching either queue. Either endpoint missing from the graph returns
// infinity.
func (s *Search[N]) FindShortestPath(src, dst N) int64 {
	if src == dst {
		return 0
	}
	if !s.g.Contains(src) || !s.g.Contains(dst) {
		return infinity
	}

	maxKey := maxKeyFor(s.g)
	qf, err := queue.New[N](s.opts.QueueVariant, maxKey)
	if err != nil {
		return infinity
	}
	qb, err := queue.New[N](s.opts.QueueVariant, maxKey)
	if err != nil {
		return infinity
	}

	r := &run[N]{
		g:     s.g,
		sigma: s.opts.Skew,
		distf: map[N]int64{src: 0},
		distb: map[N]int64{dst: 0},
		qf:    qf,
		qb:    qb,
		mu:    infinity,
	}
	_ = qf.Insert(src, 0)
	_ = qb.Insert(dst, 0)
	return r.loop()
}

// run holds the mutable state of one FindShortestPath call.
type run[N comparable] struct {
	g     graph.View[N]
	sigma float64

	distf, distb map[N]int64
	qf, qb       queue.Queue[N]
	mu           int64
}

// loop drives the alternating frontier expansion described in SPEC_FULL
// §4.D until either queue empties or the min_f+min_b >= mu bound fires.
func (r *run[N]) loop() int64 {
	for !r.qf.IsEmpty() && !r.qb.IsEmpty() {
		_, mf, _ := r.qf.Peek()
		_, mb, _ := r.qb.Peek()
		if mf+mb >= r.mu {
			break
		}

		if r.chooseForward() {
			r.stepForward()
		} else {
			r.stepBackward()
		}
	}
	return r.mu
}

// chooseForward implements the skew rule: expand forward iff
// |Qf|*(1-sigma) <= |Qb|*sigma.
func (r *run[N]) chooseForward() bool {
	return float64(r.qf.Size())*(1-r.sigma) <= float64(r.qb.Size())*r.sigma
}

func (r *run[N]) stepForward() {
	u, d, ok := r.qf.ExtractMin()
	if !ok || d > r.distf[u] {
		return
	}
	for _, e := range r.g.Successors(u) {
		r.relax(r.distf, r.qf, r.distb, u, e.Node, d+e.Weight)
	}
}

func (r *run[N]) stepBackward() {
	u, d, ok := r.qb.ExtractMin()
	if !ok || d > r.distb[u] {
		return
	}
	for _, e := range r.g.Predecessors(u) {
		r.relax(r.distb, r.qb, r.distf, u, e.Node, d+e.Weight)
	}
}

// relax applies one edge's update on side "own" (distOwn/qOwn), and, if v
// is already known on the opposite side (distOpp), updates mu with the
// combined length.
func (r *run[N]) relax(distOwn map[N]int64, qOwn queue.Queue[N], distOpp map[N]int64, _, v N, cand int64) {
	if cur, ok := distOwn[v]; ok && cand >= cur {
		return
	}
	distOwn[v] = cand
	if qOwn.Contains(v) {
		_ = qOwn.DecreaseKey(v, cand)
	} else {
		_ = qOwn.Insert(v, cand)
	}
	if oppDist, ok := distOpp[v]; ok {
		if total := cand + oppDist; total < r.mu {
			r.mu = total
		}
	}
}

// maxKeyFor computes an upper bound on any priority either frontier could
// ever insert, sized for the Radix variant: maxEdgeWeight * max(|V|-1, 1).
func maxKeyFor[N comparable](g graph.View[N]) int64 {
	nodes := g.Nodes()
	var maxW int64
	for _, n := range nodes {
		for _, e := range g.Successors(n) {
			if e.Weight > maxW {
				maxW = e.Weight
			}
		}
	}
	bound := int64(len(nodes) - 1)
	if bound < 1 {
		bound = 1
	}
	return maxW * bound
}
