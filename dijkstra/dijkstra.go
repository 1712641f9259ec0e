// File: dijkstra.go
// Role: single-source shortest paths over graph.View[N], behind the
//       pluggable queue.Queue[N] contract.
// Determinism: a run is fully determined by g, s, and the chosen queue
//   variant; successor order and queue insertion-order tie-breaks make
//   repeated runs over the same inputs produce identical dist/prev maps.
// Concurrency: Run owns its queue and maps; concurrent Run calls over the
//   same graph.View[N] do not interfere, since View[N] is read-only.
// AI-HINT (file): mirrors the classic init/process/relax split — runner
//   holds the mutable search state, process drives the main loop, relax
//   applies the edge-relaxation rule from SPEC_FULL §4.C.
package dijkstra

import (
	"math"

	"github.com/wayfare-dev/pathkit/graph"
	"github.com/wayfare-dev/pathkit/queue"
)

// maxDistance is the default distance cap: effectively unbounded.
const maxDistance = math.MaxInt64

// runner holds the mutable state of a single Run call.
type runner[N comparable] struct {
	g    graph.View[N]
	opts Options

	dist map[N]int64
	prev map[N]N
	pq   queue.Queue[N]
}

// Run computes single-source shortest-path distances from s to every node
// reachable from s in g, using non-negative edge weights. The returned map
// holds an entry for every node in g.Nodes(); unreachable nodes (and nodes
// beyond WithMaxDistance, if set) carry math.MaxInt64 as a +∞ sentinel.
//
// The second return value is the predecessor map (nil unless
// WithReturnPath is given): prev[v] is the node immediately before v on a
// shortest s->v path, absent for s itself and for unreached nodes.
//
// Run returns ErrUnknownSource if s is not a known node in g.
func Run[N comparable](g graph.View[N], s N, opts ...Option) (map[N]int64, map[N]N, error) {
	if !g.Contains(s) {
		return nil, nil, ErrUnknownSource
	}

	o := newOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pq, err := queue.New[N](o.QueueVariant, maxKeyFor(g))
	if err != nil {
		return nil, nil, err
	}

	r := &runner[N]{
		g:    g,
		opts: o,
		dist: make(map[N]int64),
		pq:   pq,
	}
	if o.ReturnPath {
		r.prev = make(map[N]N)
	}
	r.init(s)
	r.process()

	return r.dist, r.prev, nil
}

// init seeds dist with +∞ for every node, sets dist[s] = 0, and inserts s.
func (r *runner[N]) init(s N) {
	for _, n := range r.g.Nodes() {
		r.dist[n] = maxDistance
	}
	r.dist[s] = 0
	// Insert cannot fail here: s was just recorded and is unique in a
	// freshly constructed queue.
	_ = r.pq.Insert(s, 0)
}

// process drains the queue, discarding stale entries and relaxing every
// qualifying successor of each freshly settled node.
func (r *runner[N]) process() {
	for !r.pq.IsEmpty() {
		u, d, ok := r.pq.ExtractMin()
		if !ok {
			return
		}
		if d > r.dist[u] {
			continue // stale entry left behind by a prior DecreaseKey
		}
		if d > r.opts.MaxDistance {
			continue
		}
		for _, e := range r.g.Successors(u) {
			r.relax(u, e.Node, d, e.Weight)
		}
	}
}

// relax applies the edge u->v (weight w) given u's settled distance d: if
// d+w improves v's current distance and stays within MaxDistance, dist[v]
// and the predecessor map (if requested) are updated and v is pushed or
// promoted in the queue accordingly.
func (r *runner[N]) relax(u, v N, d, w int64) {
	cand := d + w
	if cand > r.opts.MaxDistance || cand >= r.dist[v] {
		return
	}
	r.dist[v] = cand
	if r.prev != nil {
		r.prev[v] = u
	}
	if r.pq.Contains(v) {
		// DecreaseKey is a no-op if cand is not smaller than the live
		// priority, which cannot happen here since cand < r.dist[v]
		// (the live priority) was just established above.
		_ = r.pq.DecreaseKey(v, cand)
	} else {
		_ = r.pq.Insert(v, cand)
	}
}

// maxKeyFor computes an upper bound on any priority the run could ever
// insert, sized for the Radix variant (ignored by the other two):
// maxEdgeWeight * max(|V|-1, 1).
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

// Path reconstructs the shortest s->t path from a predecessor map produced
// by Run with WithReturnPath, walking prev backward from t. ok is false if
// t is unreachable from s (no entry in prev and t != s).
func Path[N comparable](prev map[N]N, s, t N) (path []N, ok bool) {
	if s == t {
		return []N{s}, true
	}
	cur := t
	rev := []N{t}
	for {
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		rev = append(rev, p)
		if p == s {
			break
		}
		cur = p
	}
	path = make([]N, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path, true
}
