// Package pathkit is a shortest-path engine for directed, non-negatively
// weighted graphs over any comparable node identifier.
//
// Five packages, usable on their own or together:
//
//	graph/      — the View[N]/Graph[N] contract every search package reads
//	queue/      — three interchangeable monotone priority queues
//	dijkstra/   — single-source Dijkstra, parameterized over the queue
//	bidijkstra/ — skew-balanced bidirectional Dijkstra for point-to-point queries
//	ch/         — Contraction Hierarchies: preprocess once, query many times fast
//
// cmd/pathbench is a thin CLI driver over all three query strategies; it
// is a demo/benchmark harness, not part of the library surface.
//
//	go get github.com/wayfare-dev/pathkit
package pathkit
