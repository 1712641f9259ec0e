package graph

import "errors"

// Sentinel errors for Graph construction. Query-time misses (unknown
// source/target) are never errors — see View.Weight and the search
// packages, which encode them as +∞ (math.MaxInt64).
var (
	// ErrNegativeWeight indicates AddEdge was called with a negative weight.
	// This module's algorithms assume non-negative weights throughout
	// (SPEC §1 Non-goals); construction rejects the violation immediately
	// rather than letting it surface later as a subtle Dijkstra bug.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)
