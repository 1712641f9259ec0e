// File: preprocess.go
// Role: §4.E1 lazy best-first node contraction — assigns every node a
//       rank and populates chGraph with shortcuts so that G_CH carries a
//       shortest path for every (s, t) whose node ranks form an up-down
//       sequence.
// Determinism: contraction order is fully determined by the importance
//   function and the internal Binary queue's insertion-order tie-break
//   over a fixed Nodes() iteration order.
// AI-HINT (file): importance is recomputed on every pop, not cached —
//   contracting a neighbor changes liveIncoming/liveOutgoing for u, so a
//   stale priority would contract nodes out of true best-first order.
package ch

import "github.com/wayfare-dev/pathkit/queue"

// Preprocess runs the full contraction phase described in SPEC_FULL §4.E1.
// It never fails on a finite, non-negative-weighted graph.
func (c *ContractionHierarchy[N]) Preprocess() {
	pq, _ := queue.New[N](queue.Binary, 0) // Binary never errors and ignores maxKey.
	for _, u := range c.chGraph.Nodes() {
		_ = pq.Insert(u, c.importance(u))
	}

	nextRank := 0
	for !pq.IsEmpty() {
		u, _, ok := pq.ExtractMin()
		if !ok {
			break
		}

		current := c.importance(u)
		if !pq.IsEmpty() {
			if _, next, _ := pq.Peek(); current > next {
				_ = pq.Insert(u, current)
				continue
			}
		}

		c.rank[u] = nextRank
		nextRank++
		c.nodeOrder = append(c.nodeOrder, u)
		c.contractNode(u)
		c.contracted[u] = true
	}
}

// liveIncoming returns u's predecessors that are not yet contracted.
func (c *ContractionHierarchy[N]) liveIncoming(u N) []N {
	var out []N
	for _, e := range c.chGraph.Predecessors(u) {
		if !c.contracted[e.Node] {
			out = append(out, e.Node)
		}
	}
	return out
}

// liveOutgoing returns u's successors that are not yet contracted.
func (c *ContractionHierarchy[N]) liveOutgoing(u N) []N {
	var out []N
	for _, e := range c.chGraph.Successors(u) {
		if !c.contracted[e.Node] {
			out = append(out, e.Node)
		}
	}
	return out
}

// importance computes I(u) = shortcuts(u) - (|incoming|+|outgoing|), per
// SPEC_FULL §4.E1. The "contracted neighbors" term from the original
// heuristic is fixed at 0.
func (c *ContractionHierarchy[N]) importance(u N) int64 {
	incoming := c.liveIncoming(u)
	outgoing := c.liveOutgoing(u)

	var shortcuts int64
	for _, p := range incoming {
		wpu, _ := c.chGraph.Weight(p, u)
		for _, q := range outgoing {
			if p == q {
				continue
			}
			wuq, _ := c.chGraph.Weight(u, q)
			target := wpu + wuq
			if c.witness(p, q, u, target) > target {
				shortcuts++
			}
		}
	}
	return shortcuts - int64(len(incoming)+len(outgoing))
}

// contractNode inserts the shortcuts u's removal requires: for every
// (p, q) pair of live neighbors where no witness path beats the
// direct-through-u distance, a shortcut p->q replaces it.
func (c *ContractionHierarchy[N]) contractNode(u N) {
	incoming := c.liveIncoming(u)
	outgoing := c.liveOutgoing(u)

	for _, p := range incoming {
		wpu, _ := c.chGraph.Weight(p, u)
		for _, q := range outgoing {
			if p == q {
				continue
			}
			wuq, _ := c.chGraph.Weight(u, q)
			target := wpu + wuq
			if c.witness(p, q, u, target) > target {
				c.addShortcut(p, q, target, u)
			}
		}
	}
}

// addShortcut records a p->q shortcut of weight w via mid, coalescing per
// I5: if an edge p->q (original or a prior shortcut) already achieves
// weight <= w, the new shortcut is redundant and is not inserted. chGraph
// has no edge-removal primitive, so a shortcut only ever improves on what
// is already recorded in shortcutWitness; Weight(p, q) resolves to the
// minimum over any parallel edges regardless.
func (c *ContractionHierarchy[N]) addShortcut(p, q N, w int64, mid N) {
	if existing, ok := c.chGraph.Weight(p, q); ok && existing <= w {
		return
	}
	_ = c.chGraph.AddEdge(p, q, w)
	c.shortcutWitness[pairKey[N]{u: p, v: q}] = mid
}

// witness runs a local Dijkstra from src toward dst on chGraph, forbidden
// to use exclude or any already-contracted node, terminating as soon as
// dst is popped (returning its distance) or the popped key exceeds limit
// (returning +∞).
func (c *ContractionHierarchy[N]) witness(src, dst, exclude N, limit int64) int64 {
	pq, _ := queue.New[N](queue.Binary, 0)
	dist := map[N]int64{src: 0}
	_ = pq.Insert(src, 0)

	for !pq.IsEmpty() {
		u, d, ok := pq.ExtractMin()
		if !ok {
			break
		}
		if d > limit {
			return infinity
		}
		if u == dst {
			return d
		}
		if d > dist[u] {
			continue
		}
		for _, e := range c.chGraph.Successors(u) {
			v := e.Node
			if v == exclude || c.contracted[v] {
				continue
			}
			cand := d + e.Weight
			if cur, ok := dist[v]; ok && cand >= cur {
				continue
			}
			dist[v] = cand
			if pq.Contains(v) {
				_ = pq.DecreaseKey(v, cand)
			} else {
				_ = pq.Insert(v, cand)
			}
		}
	}
	if d, ok := dist[dst]; ok {
		return d
	}
	return infinity
}
