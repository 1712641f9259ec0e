package dijkstra_test

import (
	"fmt"

	"github.com/wayfare-dev/pathkit/dijkstra"
	"github.com/wayfare-dev/pathkit/graph"
)

func ExampleRun_triangle() {
	g := graph.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 10)

	dist, _, err := dijkstra.Run[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist["A"], dist["B"], dist["C"])
	// Output: 0 1 3
}

func ExampleRun_withReturnPath() {
	g := graph.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 5)
	_ = g.AddEdge("B", "D", 1)
	_ = g.AddEdge("C", "D", 1)

	_, prev, err := dijkstra.Run[string](g, "A", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.Path(prev, "A", "D")
	fmt.Println(path)
	// Output: [A B D]
}
