package ch_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfare-dev/pathkit/ch"
	"github.com/wayfare-dev/pathkit/dijkstra"
	"github.com/wayfare-dev/pathkit/graph"
)

func diamondGraph(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	return g
}

func TestQueryIdentity(t *testing.T) {
	g := diamondGraph(t)
	h := ch.New[string](g)
	h.Preprocess()
	require.Equal(t, int64(0), h.Query("A", "A"))
}

func TestQueryUnknownEndpointIsInfinity(t *testing.T) {
	g := diamondGraph(t)
	h := ch.New[string](g)
	h.Preprocess()
	require.Equal(t, int64(math.MaxInt64), h.Query("A", "Z"))
}

func TestQueryDisconnected(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	h := ch.New[string](g)
	h.Preprocess()
	require.Equal(t, int64(math.MaxInt64), h.Query("A", "C"))
}

// diamondGraph's cheap route A->B->D (2) beats A->C->D (6).
func TestQueryDiamond(t *testing.T) {
	g := diamondGraph(t)
	h := ch.New[string](g)
	h.Preprocess()
	require.Equal(t, int64(2), h.Query("A", "D"))
}

// P7: CH query agrees with plain Dijkstra for every (s, t) pair.
func TestQueryAgreesWithDijkstra(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 2))
	require.NoError(t, g.AddEdge("C", "D", 7))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddEdge("E", "A", 3))

	h := ch.New[string](g)
	h.Preprocess()

	for _, s := range g.Nodes() {
		dist, _, err := dijkstra.Run[string](g, s)
		require.NoError(t, err)
		for _, tn := range g.Nodes() {
			require.Equal(t, dist[tn], h.Query(s, tn), "s=%s t=%s", s, tn)
		}
	}
}

// P8: every unpacked path's concrete edge weights sum to Query's distance.
func TestUnpackMatchesQueryWeight(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 2))
	require.NoError(t, g.AddEdge("C", "D", 7))
	require.NoError(t, g.AddEdge("D", "E", 1))

	h := ch.New[string](g)
	h.Preprocess()

	for _, s := range g.Nodes() {
		for _, tn := range g.Nodes() {
			want := h.Query(s, tn)
			path := h.Unpack(s, tn)
			if want == int64(math.MaxInt64) {
				require.Nil(t, path, "s=%s t=%s", s, tn)
				continue
			}
			require.Equal(t, s, path[0], "s=%s t=%s", s, tn)
			require.Equal(t, tn, path[len(path)-1], "s=%s t=%s", s, tn)
			var sum int64
			for i := 0; i+1 < len(path); i++ {
				w, ok := g.Weight(path[i], path[i+1])
				require.True(t, ok, "missing edge %s->%s", path[i], path[i+1])
				sum += w
			}
			require.Equal(t, want, sum, "s=%s t=%s", s, tn)
		}
	}
}

// A random Erdos-Renyi G(n, p) graph (25 nodes, edge probability 0.15,
// weights in [1, 20], seed 42), checking ch.Query against dijkstra.Run for
// every pair.
func TestQueryRandomGraphAgreesWithDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 25
	g := graph.New[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < 0.15 {
				require.NoError(t, g.AddEdge(i, j, int64(1+rng.Intn(20))))
			}
		}
	}

	h := ch.New[int](g)
	h.Preprocess()

	for s := 0; s < n; s++ {
		dist, _, err := dijkstra.Run[int](g, s)
		require.NoError(t, err)
		for tn := 0; tn < n; tn++ {
			require.Equal(t, dist[tn], h.Query(s, tn), "s=%d t=%d", s, tn)
		}
	}
}

func TestPreprocessNeverFailsOnZeroWeightCycle(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "A", 0))
	require.NoError(t, g.AddEdge("B", "C", 1))

	h := ch.New[string](g)
	h.Preprocess()
	require.Equal(t, int64(1), h.Query("A", "C"))
}
