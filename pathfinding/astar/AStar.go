// Package astar implements A* search and cost-bounded flood fill over a
// pathfinding.Grid. Each call runs a fresh, self-contained search: no state
// is shared between invocations, so concurrent searches need no
// coordination.
package astar

import (
	"github.com/Starath/GridPath_BE/pathfinding"
)

// Options configures one search.
type Options struct {
	// CostThreshold caps the accumulated path cost. Edges that would push a
	// node past it are simply not expanded; exceeding it is not an error.
	CostThreshold float64
	HasThreshold  bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCostThreshold bounds the search to paths of accumulated cost at most
// threshold.
func WithCostThreshold(threshold float64) Option {
	return func(options *Options) {
		options.CostThreshold = threshold
		options.HasThreshold = true
	}
}

// offset is one neighbor direction. Order within the per-topology tables is
// fixed and observable: it decides which of several equal-cost paths wins.
type offset struct {
	dx, dy int
}

// Neighbor order: N, NE, E, SE, S, SW, W, NW, with each topology keeping
// only the directions it supports.
var (
	cardinalOffsets = []offset{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	}
	hexOffsets = []offset{
		{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0},
	}
	intercardinalOffsets = []offset{
		{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
)

func topologyOffsets(topology pathfinding.Topology) []offset {
	switch topology {
	case pathfinding.TopologyHex:
		return hexOffsets
	case pathfinding.TopologyIntercardinal:
		return intercardinalOffsets
	default:
		return cardinalOffsets
	}
}

// FindPath searches for a cheapest path from (startX, startY) to
// (endX, endY) on grid. It returns the full coordinate sequence from start
// to destination inclusive and found=true, or nil and found=false when no
// path exists or the destination is not a valid stopping point. When start
// equals destination the path is empty and found is true.
func FindPath(grid pathfinding.Grid, startX, startY, endX, endY int, opts ...Option) (path []pathfinding.Coord, found bool) {
	if startX == endX && startY == endY {
		return []pathfinding.Coord{}, true
	}
	if !grid.IsStoppable(endX, endY) {
		return nil, false
	}

	state := newSearchState()
	state.endX, state.endY = endX, endY
	state.hasEnd = true
	applyOptions(state, opts)

	state.push(&node{
		x:        startX,
		y:        startY,
		distance: manhattan(startX, startY, endX, endY),
	})

	run(grid, state)

	if state.frontier.Len() == 0 {
		return nil, false
	}

	// The loop stopped with the destination at the top of the frontier;
	// walk the parent chain back to the start node.
	for n := state.pop(); n != nil; n = n.parent {
		path = append(path, pathfinding.Coord{X: n.x, Y: n.y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// FindWalkable floods outward from the given start coordinates and returns
// every reachable coordinate that is walkable, in reverse discovery order.
// A start coordinate that is itself not walkable still seeds the flood but
// is excluded from the result. With a cost threshold of 0 the result is
// exactly the walkable start coordinates.
func FindWalkable(grid pathfinding.Grid, starts []pathfinding.Coord, opts ...Option) []pathfinding.Coord {
	state := newSearchState()
	applyOptions(state, opts)

	for _, start := range starts {
		// No destination: the heuristic is a constant 1 for every node.
		state.push(&node{x: start.X, y: start.Y, distance: 1})
	}

	run(grid, state)

	discovered := state.cache.all()
	coords := []pathfinding.Coord{}
	for i := len(discovered) - 1; i >= 0; i-- {
		n := discovered[i]
		if grid.IsWalkable(n.x, n.y) {
			coords = append(coords, pathfinding.Coord{X: n.x, Y: n.y})
		}
	}
	return coords
}

func applyOptions(state *searchState, opts []Option) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	state.costThreshold = options.CostThreshold
	state.hasThreshold = options.HasThreshold
}

// run drives the expansion loop until the frontier empties or the
// destination reaches the top of the frontier. The destination node is left
// in the frontier, not expanded.
func run(grid pathfinding.Grid, state *searchState) {
	offsets := topologyOffsets(grid.Topology)
	for state.frontier.Len() > 0 {
		top := state.peek()
		if state.hasEnd && top.x == state.endX && top.y == state.endY {
			return
		}

		current := state.pop()
		current.visited = true
		state.cache.put(current)

		for _, o := range offsets {
			if grid.InGrid(current.x+o.dx, current.y+o.dy) {
				checkAdjacent(grid, state, current, o)
			}
		}
	}
}

// checkAdjacent evaluates one edge out of source. Unwalkable or
// over-threshold neighbors are skipped outright. Otherwise the neighbor's
// node is resolved through the cache and re-queued when it has not been
// expanded yet.
func checkAdjacent(grid pathfinding.Grid, state *searchState, source *node, o offset) {
	x, y := source.x+o.dx, source.y+o.dy
	edgeCost := grid.EdgeCost(x, y)
	if !grid.IsWalkable(x, y) || !state.affordable(source.cost+edgeCost) {
		return
	}

	adjacent := coordinateToNode(state, source, x, y, edgeCost)
	state.cache.put(adjacent)
	if !adjacent.visited {
		state.push(adjacent)
	}
	// A cheaper route into an already expanded node is dropped here: nodes
	// are never reopened, so the first expansion fixes cost and parent for
	// the rest of the search.
}

// coordinateToNode returns the cached node for (x, y), or creates it on
// first discovery. An existing node keeps its original cost and parent even
// when the new arrival would be cheaper.
func coordinateToNode(state *searchState, source *node, x, y int, edgeCost float64) *node {
	if existing, ok := state.cache.get(x, y); ok {
		return existing
	}
	distance := 1.0
	if state.hasEnd {
		distance = manhattan(x, y, state.endX, state.endY)
	}
	return &node{
		parent:   source,
		x:        x,
		y:        y,
		cost:     source.cost + edgeCost,
		distance: distance,
	}
}

// manhattan is the heuristic for every topology, including the diagonal
// ones where it overestimates some moves. That keeps the estimate cheap and
// the expansion order simple at the price of tightness.
func manhattan(x, y, endX, endY int) float64 {
	dx := x - endX
	if dx < 0 {
		dx = -dx
	}
	dy := y - endY
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
