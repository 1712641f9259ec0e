// Package bidijkstra implements skew-balanced bidirectional Dijkstra:
// two coupled searches, one from the source over graph.View[N] and one
// from the target over its predecessor edges, racing toward each other.
//
// # Algorithm
//
// Each step extracts the minimum from whichever frontier the skew rule
// currently favors (forward iff |Qf|*(1-sigma) <= |Qb|*sigma), relaxes its
// outgoing (or, on the backward side, incoming) edges, and opportunistically
// tightens the best-known meeting distance mu whenever a newly relaxed node
// is already known on the opposite side. The search terminates as soon as
// the sum of both frontiers' minima reaches or exceeds mu — at that point
// no unexplored node can improve on the best path found so far.
//
// # Usage
//
//	d := bidijkstra.New(g).FindShortestPath("A", "D")
//	if d == math.MaxInt64 {
//		// no path
//	}
//
// WithSkew tunes which frontier the alternation rule favors; 0.5 (the
// default) alternates by raw frontier size with no bias toward either
// side. WithQueueVariant selects the Queue[N] implementation backing both
// frontiers. The returned distance is identical for every sigma in [0,1]
// and every queue variant (P6) — only the number of nodes each frontier
// touches before termination differs.
//
// # Determinism
//
// A search is fully determined by the graph, source, target, queue
// variant, and sigma: successor/predecessor order and the queue's
// insertion-order tie-break make repeated runs over the same inputs
// produce identical results.
package bidijkstra
