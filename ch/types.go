// File: types.go
// Role: the ContractionHierarchy[N] receiver and the shared state its
//       three phases (preprocess.go, query.go, unpack.go) operate on.
package ch

import (
	"math"

	"github.com/wayfare-dev/pathkit/graph"
)

// infinity is the +∞ sentinel Query and the preprocessing witness search
// use for "no path within bound".
const infinity = math.MaxInt64

// pairKey identifies a directed (u, v) shortcut for the shortcutWitness
// lookup.
type pairKey[N comparable] struct {
	u, v N
}

// ContractionHierarchy holds the augmented graph (original edges plus
// shortcuts) built by Preprocess, and the node ranking and
// shortcut-to-witness map Query and Unpack read afterward.
//
// Preprocess must run to completion before Query or Unpack are called; it
// mutates chGraph and must not overlap with a query. After Preprocess
// returns, Query and Unpack are read-only and may be called concurrently
// from multiple goroutines, each with its own local queues and distance
// maps.
type ContractionHierarchy[N comparable] struct {
	chGraph *graph.Graph[N]

	contracted map[N]bool
	rank       map[N]int
	nodeOrder  []N

	shortcutWitness map[pairKey[N]]N
}

// New clones g into an augmented working graph ready for Preprocess. g
// itself is never mutated.
func New[N comparable](g graph.View[N]) *ContractionHierarchy[N] {
	chGraph := graph.New[N]()
	for _, u := range g.Nodes() {
		chGraph.AddNode(u)
		for _, e := range g.Successors(u) {
			// Edge weights were already validated non-negative by the
			// source graph; AddEdge cannot fail here.
			_ = chGraph.AddEdge(u, e.Node, e.Weight)
		}
	}
	return &ContractionHierarchy[N]{
		chGraph:         chGraph,
		contracted:      make(map[N]bool),
		rank:            make(map[N]int),
		shortcutWitness: make(map[pairKey[N]]N),
	}
}
