package dijkstra

import "errors"

// ErrUnknownSource is returned by Run when the source node is not present
// in the graph. Run reports every node in the graph, so an absent source
// cannot be resolved into a distance map at all.
var ErrUnknownSource = errors.New("dijkstra: unknown source node")
