// Package ch implements Contraction Hierarchies: a preprocessing step that
// augments a graph with shortcut edges and a node ranking, followed by a
// rank-restricted bidirectional Dijkstra query that answers s->t distance
// (and, on request, the concrete path) far faster than a plain Dijkstra
// run on the same graph.
//
// # Preprocessing
//
// Nodes are contracted one at a time in lazy best-first order by an
// importance heuristic (shortcuts needed minus edges removed); contracting
// a node replaces it with shortcut edges between its live neighbors
// wherever no witness path through the rest of the graph is as short.
// Contraction order becomes each node's rank.
//
// # Querying
//
// A query runs two coupled Dijkstra searches over the augmented graph,
// forward from s and backward from t, each restricted to edges that climb
// in rank (u->v relaxed only if rank(u) < rank(v)). The searches meet in
// the middle; the best combined length found is the answer.
//
// # Usage
//
//	h := ch.New(g)
//	h.Preprocess()
//	d := h.Query("A", "D")
//	path := h.Unpack("A", "D") // concrete path in the original graph
//
// Preprocess must complete before any Query or Unpack call, and must not
// run concurrently with one; once preprocessed, Query and Unpack are
// read-only and safe to call concurrently from multiple goroutines.
//
// # Correctness
//
// Query(s, t) always agrees with dijkstra.Run(g, s)[t] (P7); Unpack(s, t)
// always returns a path of that same total weight in the original graph
// (P8). Preprocessing never fails on a finite, non-negative-weighted
// graph; unknown s or t returns +∞, and s == t returns 0.
package ch
