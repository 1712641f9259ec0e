// Package graph provides the read-only adjacency view that every search
// package in this module (dijkstra, bidijkstra, ch) is parameterized over,
// plus the mutable Graph type used to build one.
//
// Overview:
//
//   - Graph[N] is a thread-safe, directed, weighted adjacency-list graph
//     over any comparable node identifier N. Parallel edges are permitted;
//     Weight(u, v) always returns the minimum over them.
//   - View[N] is the narrow read-only interface algorithms depend on:
//     Successors, Predecessors, Contains, Weight, Nodes, Reverse. A
//     *Graph[N] satisfies View[N] directly.
//   - Reverse() returns a View[N] with every edge's endpoints swapped. It
//     is a snapshot built on each call; later AddEdge calls do not change
//     it. (Predecessors reads an incoming-edge mirror that AddEdge does
//     keep in sync.)
//
// Determinism:
//
//   - Nodes() and Successors()/Predecessors() preserve first-insertion
//     order, so two runs over the same construction sequence produce the
//     same iteration order.
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertices, edges, and the reverse
//     mirror together; reads take RLock, mutations take Lock. Multiple
//     goroutines may share a *Graph[N] for concurrent read-only search as
//     long as no goroutine calls AddEdge concurrently with those reads.
package graph
