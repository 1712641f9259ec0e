// File: query.go
// Role: §4.E2 rank-restricted bidirectional Dijkstra over the augmented
//       chGraph built by Preprocess.
// AI-HINT (file): the rank filter is strict (rank[u] < rank[v]) per the
//   zero-weight-cycle resolution in SPEC_FULL §9 — a non-strict filter
//   would let a zero-weight up-down-up cycle relax forever.
package ch

import "github.com/wayfare-dev/pathkit/queue"

// Query returns the shortest s->t distance in the original graph, or
// infinity (math.MaxInt64) if none exists. s == t returns 0; either
// endpoint absent from the graph returns infinity. Query must only be
// called after Preprocess has returned.
func (c *ContractionHierarchy[N]) Query(s, t N) int64 {
	d, _, _ := c.queryWithPath(s, t)
	return d
}

// queryWithPath runs the coupled forward/backward search and additionally
// reconstructs the meeting-point path over chGraph edges (which may
// include shortcuts), for Unpack's use.
func (c *ContractionHierarchy[N]) queryWithPath(s, t N) (int64, []N, bool) {
	if s == t {
		return 0, []N{s}, true
	}
	if !c.chGraph.Contains(s) || !c.chGraph.Contains(t) {
		return infinity, nil, false
	}

	qf, _ := queue.New[N](queue.Binary, 0)
	qb, _ := queue.New[N](queue.Binary, 0)
	distf := map[N]int64{s: 0}
	distb := map[N]int64{t: 0}
	prevf := map[N]N{}
	prevb := map[N]N{}
	_ = qf.Insert(s, 0)
	_ = qb.Insert(t, 0)

	mu := int64(infinity)
	var meet N
	found := false

	for !qf.IsEmpty() || !qb.IsEmpty() {
		if !qf.IsEmpty() {
			u, d, ok := qf.ExtractMin()
			if ok && d <= mu && d <= distf[u] {
				for _, e := range c.chGraph.Successors(u) {
					v := e.Node
					if c.rank[u] >= c.rank[v] {
						continue
					}
					alt := d + e.Weight
					if cur, ok := distf[v]; ok && alt >= cur {
						continue
					}
					distf[v] = alt
					prevf[v] = u
					if qf.Contains(v) {
						_ = qf.DecreaseKey(v, alt)
					} else {
						_ = qf.Insert(v, alt)
					}
					if bd, ok := distb[v]; ok && alt+bd < mu {
						mu, meet, found = alt+bd, v, true
					}
				}
			}
		}
		if !qb.IsEmpty() {
			u, d, ok := qb.ExtractMin()
			if ok && d <= mu && d <= distb[u] {
				for _, e := range c.chGraph.Predecessors(u) {
					v := e.Node
					if c.rank[u] >= c.rank[v] {
						continue
					}
					alt := d + e.Weight
					if cur, ok := distb[v]; ok && alt >= cur {
						continue
					}
					distb[v] = alt
					prevb[v] = u
					if qb.Contains(v) {
						_ = qb.DecreaseKey(v, alt)
					} else {
						_ = qb.Insert(v, alt)
					}
					if fd, ok := distf[v]; ok && alt+fd < mu {
						mu, meet, found = alt+fd, v, true
					}
				}
			}
		}
	}

	if !found {
		return infinity, nil, false
	}
	return mu, reconstructPath(s, t, meet, prevf, prevb), true
}

// reconstructPath walks prevf backward from meet to s, then prevb forward
// from meet to t, producing the full s->t node sequence over chGraph
// edges (shortcuts included, unexpanded).
func reconstructPath[N comparable](s, t, meet N, prevf, prevb map[N]N) []N {
	var fwd []N
	for cur := meet; ; {
		fwd = append(fwd, cur)
		if cur == s {
			break
		}
		p, ok := prevf[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}

	path := fwd
	for cur := meet; cur != t; {
		n, ok := prevb[cur]
		if !ok {
			break
		}
		path = append(path, n)
		cur = n
	}
	return path
}
