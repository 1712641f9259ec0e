// Package dijkstra implements single-source shortest paths over any
// graph.View[N] with non-negative integer edge weights.
//
// # Algorithm
//
// The classic label-setting algorithm, parameterized over the three
// queue.Queue[N] variants (binary heap, Fibonacci heap, monotone radix
// heap) rather than committing to one: distances are initialized to +∞
// except the source, which starts at 0 and seeds the queue; the main loop
// repeatedly extracts the minimum-distance node, discards it if a cheaper
// settlement already superseded it, and otherwise relaxes every outgoing
// edge, promoting or inserting the far endpoint in the queue as its
// distance improves.
//
// # Usage
//
//	dist, _, err := dijkstra.Run(g, "A")
//	if err != nil {
//		// s not in g
//	}
//	fmt.Println(dist["D"]) // math.MaxInt64 if D is unreachable
//
// Pass WithReturnPath to additionally receive a predecessor map, and
// dijkstra.Path to turn that map into a concrete node sequence. Pass
// WithQueueVariant to benchmark or pin a specific queue implementation;
// the distances returned are identical regardless of variant (P4) — only
// wall-clock behavior differs. WithMaxDistance bounds the search to a
// distance cap, leaving farther nodes at +∞ without expanding past them.
//
// # Complexity
//
// O((|V|+|E|) log |V|) with the binary or Fibonacci queue (the latter
// amortizing DecreaseKey to O(1)); O(|V|+|E|+C) with the radix queue,
// where C is the number of distinct priority buckets touched, which is
// pseudo-polynomial in the maximum edge weight.
//
// # Determinism
//
// A run is fully determined by the graph, the source, and the queue
// variant: successor order and the queue's insertion-order tie-break make
// repeated runs over the same inputs produce identical results.
package dijkstra
