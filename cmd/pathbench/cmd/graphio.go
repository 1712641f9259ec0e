package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wayfare-dev/pathkit/graph"
)

// jsonEdge is one outgoing edge in the on-disk adjacency-map format:
//
//	{
//	  "A": [{"to": "B", "weight": 1}, {"to": "C", "weight": 5}],
//	  "B": [{"to": "D", "weight": 1}],
//	  "C": [{"to": "D", "weight": 1}],
//	  "D": []
//	}
//
// This format is a pathbench-only driver concern; the hard core specifies
// no on-disk graph representation.
type jsonEdge struct {
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

func loadGraphFile(path string) (*graph.Graph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pathbench: reading graph file: %w", err)
	}

	var adjacency map[string][]jsonEdge
	if err := json.Unmarshal(data, &adjacency); err != nil {
		return nil, fmt.Errorf("pathbench: parsing graph file: %w", err)
	}

	g := graph.New[string]()
	for u, edges := range adjacency {
		g.AddNode(u)
		for _, e := range edges {
			if err := g.AddEdge(u, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("pathbench: edge %s->%s: %w", u, e.To, err)
			}
		}
	}
	return g, nil
}
