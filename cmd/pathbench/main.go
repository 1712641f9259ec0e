// Command pathbench is a thin CLI driver over the pathkit query engines.
// It never touches graph/queue/dijkstra/bidijkstra/ch internals directly —
// it only calls their exported constructors and query methods, so it can
// be deleted or replaced without any change to the hard core.
package main

import "github.com/wayfare-dev/pathkit/cmd/pathbench/cmd"

func main() {
	cmd.Execute()
}
