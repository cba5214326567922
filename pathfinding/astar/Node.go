package astar

// node is one discovered cell within a single search. A node is created at
// most once per coordinate (first discovery wins) and, apart from the
// visited flag flipped when it is dequeued, never changes afterwards.
type node struct {
	parent *node // nil for a start node
	x, y   int
	// cost is the accumulated path cost from the start (g).
	cost float64
	// distance is the heuristic estimate to the destination (h). Searches
	// without a destination use a constant 1.
	distance float64
	visited  bool
}

// totalCost is the estimated total path cost through this node (f = g + h).
func (n *node) totalCost() float64 {
	return n.cost + n.distance
}
