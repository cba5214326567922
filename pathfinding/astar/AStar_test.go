package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starath/GridPath_BE/pathfinding"
)

// Helper to build a grid where tile 1 is walkable with cost 1.
func testGrid(tiles [][]int, topology pathfinding.Topology) pathfinding.Grid {
	return pathfinding.Grid{
		Tiles:         tiles,
		WalkableTiles: []int{1},
		Topology:      topology,
	}
}

// openGrid returns a size x size grid of walkable tiles.
func openGrid(size int, topology pathfinding.Topology) pathfinding.Grid {
	tiles := make([][]int, size)
	for y := range tiles {
		tiles[y] = make([]int, size)
		for x := range tiles[y] {
			tiles[y][x] = 1
		}
	}
	return testGrid(tiles, topology)
}

// wallGrid returns the 5x5 grid from the detour scenarios: column 2 is
// unwalkable except on rows 3 and 4.
func wallGrid() pathfinding.Grid {
	return testGrid([][]int{
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}, pathfinding.TopologyCardinal)
}

func coords(pairs ...[2]int) []pathfinding.Coord {
	result := make([]pathfinding.Coord, len(pairs))
	for i, pair := range pairs {
		result[i] = pathfinding.Coord{X: pair[0], Y: pair[1]}
	}
	return result
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	grid := openGrid(3, pathfinding.TopologyCardinal)

	path, found := FindPath(grid, 1, 1, 1, 1)
	require.True(t, found)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	t.Run("even outside the grid", func(t *testing.T) {
		path, found := FindPath(grid, -5, -5, -5, -5)
		require.True(t, found)
		assert.Empty(t, path)
	})
}

func TestFindPath_DestinationNotStoppable(t *testing.T) {
	grid := openGrid(3, pathfinding.TopologyCardinal)

	t.Run("unstoppable destination", func(t *testing.T) {
		path, found := FindPath(grid.AddUnstoppableCoord(2, 2), 0, 0, 2, 2)
		assert.False(t, found)
		assert.Nil(t, path)
	})

	t.Run("blocked destination", func(t *testing.T) {
		path, found := FindPath(grid.AddBlockedCoord(2, 2), 0, 0, 2, 2)
		assert.False(t, found)
		assert.Nil(t, path)
	})

	t.Run("destination outside the tiles", func(t *testing.T) {
		path, found := FindPath(grid, 0, 0, 10, 0)
		assert.False(t, found)
		assert.Nil(t, path)
	})
}

func TestFindPath_NoRoute(t *testing.T) {
	// Full wall across column 1.
	grid := testGrid([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	}, pathfinding.TopologyCardinal)

	path, found := FindPath(grid, 0, 0, 2, 0)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestFindPath_StraightLine(t *testing.T) {
	grid := openGrid(5, pathfinding.TopologyCardinal)

	path, found := FindPath(grid, 0, 2, 4, 2)
	require.True(t, found)
	assert.Equal(t, coords([2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}, [2]int{4, 2}), path)
}

func TestFindPath_DetourThroughOpenRow(t *testing.T) {
	path, found := FindPath(wallGrid(), 1, 2, 3, 2)
	require.True(t, found)
	assert.Equal(t, coords([2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{3, 2}), path)
}

func TestFindPath_DetourThroughBottomRow(t *testing.T) {
	grid := wallGrid().AddBlockedCoord(2, 3).AddBlockedCoord(3, 3)

	path, found := FindPath(grid, 1, 2, 3, 2)
	require.True(t, found)
	assert.Equal(t, coords(
		[2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 4}, [2]int{3, 4},
		[2]int{4, 4}, [2]int{4, 3}, [2]int{4, 2}, [2]int{3, 2},
	), path)
}

func TestFindPath_CostThreshold(t *testing.T) {
	grid := openGrid(5, pathfinding.TopologyCardinal)

	t.Run("threshold below the true cost", func(t *testing.T) {
		path, found := FindPath(grid, 0, 2, 4, 2, WithCostThreshold(3))
		assert.False(t, found)
		assert.Nil(t, path)
	})

	t.Run("threshold at the true cost", func(t *testing.T) {
		path, found := FindPath(grid, 0, 2, 4, 2, WithCostThreshold(4))
		require.True(t, found)
		assert.Equal(t, coords([2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}, [2]int{4, 2}), path)
	})
}

func TestFindPath_ThresholdMonotonic(t *testing.T) {
	grid := wallGrid()

	base, found := FindPath(grid, 1, 2, 3, 2, WithCostThreshold(4))
	require.True(t, found)

	// Raising the threshold keeps the search successful and never yields a
	// more expensive path. All edges cost 1 here, so len-1 is the cost.
	for _, threshold := range []float64{5, 8, 100} {
		path, found := FindPath(grid, 1, 2, 3, 2, WithCostThreshold(threshold))
		require.True(t, found, "threshold %v", threshold)
		assert.LessOrEqual(t, len(path), len(base))
	}
}

func TestFindPath_HexTopology(t *testing.T) {
	grid := openGrid(3, pathfinding.TopologyHex)

	// Hex has no SE move, so the walk to the lower right corner goes east
	// first, then south.
	path, found := FindPath(grid, 0, 0, 2, 2)
	require.True(t, found)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), path)

	t.Run("NE diagonal is available", func(t *testing.T) {
		path, found := FindPath(grid, 0, 2, 2, 0)
		require.True(t, found)
		assertConnected(t, path, pathfinding.TopologyHex)
		assert.Len(t, path, 3, "two NE moves reach the corner")
	})
}

func TestFindPath_IntercardinalTopology(t *testing.T) {
	grid := openGrid(3, pathfinding.TopologyIntercardinal)

	path, found := FindPath(grid, 0, 0, 2, 2)
	require.True(t, found)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}), path)
}

func TestFindPath_IsConnected(t *testing.T) {
	for name, topology := range map[string]pathfinding.Topology{
		"cardinal":      pathfinding.TopologyCardinal,
		"hex":           pathfinding.TopologyHex,
		"intercardinal": pathfinding.TopologyIntercardinal,
	} {
		t.Run(name, func(t *testing.T) {
			grid := openGrid(6, topology).AddBlockedCoord(2, 2).AddBlockedCoord(3, 2).AddBlockedCoord(2, 3)
			path, found := FindPath(grid, 0, 0, 5, 5)
			require.True(t, found)
			require.NotEmpty(t, path)
			assert.Equal(t, pathfinding.Coord{X: 0, Y: 0}, path[0])
			assert.Equal(t, pathfinding.Coord{X: 5, Y: 5}, path[len(path)-1])
			assertConnected(t, path, topology)
		})
	}
}

// assertConnected checks every consecutive pair is one topology move apart.
func assertConnected(t *testing.T, path []pathfinding.Coord, topology pathfinding.Topology) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		adjacent := false
		for _, o := range topologyOffsets(topology) {
			if o.dx == dx && o.dy == dy {
				adjacent = true
				break
			}
		}
		assert.True(t, adjacent, "step %d: (%d,%d) is not a single move", i, dx, dy)
	}
}

func TestFindWalkable_ReverseDiscoveryOrder(t *testing.T) {
	grid := openGrid(2, pathfinding.TopologyCardinal)

	result := FindWalkable(grid, coords([2]int{0, 0}))

	// Discovery order is (0,0), (1,0), (0,1), (1,1); the result is that
	// sequence reversed.
	assert.Equal(t, coords([2]int{1, 1}, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, 0}), result)
}

func TestFindWalkable_ZeroThreshold(t *testing.T) {
	grid := openGrid(3, pathfinding.TopologyCardinal)

	result := FindWalkable(grid, coords([2]int{1, 1}), WithCostThreshold(0))
	assert.Equal(t, coords([2]int{1, 1}), result)
}

func TestFindWalkable_UnwalkableStartSeedsTraversal(t *testing.T) {
	grid := openGrid(2, pathfinding.TopologyCardinal).AddBlockedCoord(0, 0)

	result := FindWalkable(grid, coords([2]int{0, 0}))

	// The blocked start is excluded from the result but still floods into
	// its walkable neighbors.
	assert.NotContains(t, result, pathfinding.Coord{X: 0, Y: 0})
	assert.Equal(t, coords([2]int{1, 1}, [2]int{0, 1}, [2]int{1, 0}), result)
}

func TestFindWalkable_MultiStart(t *testing.T) {
	grid := testGrid([][]int{{1, 1, 0, 1, 1}}, pathfinding.TopologyCardinal)

	result := FindWalkable(grid, coords([2]int{0, 0}, [2]int{4, 0}), WithCostThreshold(1))

	assert.Equal(t, coords([2]int{3, 0}, [2]int{4, 0}, [2]int{1, 0}, [2]int{0, 0}), result)
}

func TestFindWalkable_NothingWalkable(t *testing.T) {
	grid := testGrid([][]int{{0, 0}}, pathfinding.TopologyCardinal)

	result := FindWalkable(grid, coords([2]int{0, 0}))
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFindWalkable_NeverIncludesUnwalkable(t *testing.T) {
	grid := wallGrid().AddBlockedCoord(0, 0)

	result := FindWalkable(grid, coords([2]int{1, 2}))
	require.NotEmpty(t, result)
	for _, coord := range result {
		assert.True(t, grid.IsWalkable(coord.X, coord.Y), "coord (%d,%d)", coord.X, coord.Y)
	}
	assert.Contains(t, result, pathfinding.Coord{X: 1, Y: 2}, "walkable start is included")
}

func TestCheckAdjacent_ClosedNodeNotReopened(t *testing.T) {
	grid := openGrid(2, pathfinding.TopologyCardinal)
	state := newSearchState()

	// An already expanded node with an inflated cost.
	stale := &node{x: 1, y: 0, cost: 5, visited: true}
	state.cache.put(stale)

	// A cheaper route arrives; it must be dropped without touching cost,
	// parent or the frontier.
	source := &node{x: 0, y: 0, cost: 0}
	checkAdjacent(grid, state, source, offset{dx: 1, dy: 0})

	assert.Equal(t, 5.0, stale.cost)
	assert.Nil(t, stale.parent)
	assert.Equal(t, 0, state.frontier.Len())
}

func TestCheckAdjacent_FirstDiscoveryWins(t *testing.T) {
	grid := openGrid(2, pathfinding.TopologyCardinal)
	state := newSearchState()

	first := &node{x: 0, y: 0, cost: 0}
	checkAdjacent(grid, state, first, offset{dx: 1, dy: 0})

	discovered, ok := state.cache.get(1, 0)
	require.True(t, ok)
	assert.Same(t, first, discovered.parent)
	assert.Equal(t, 1.0, discovered.cost)
	assert.Equal(t, 1, state.frontier.Len())

	// A second, more expensive arrival re-queues the node but keeps the
	// original cost and parent.
	second := &node{x: 1, y: 1, cost: 3}
	checkAdjacent(grid, state, second, offset{dx: 0, dy: -1})

	assert.Same(t, first, discovered.parent)
	assert.Equal(t, 1.0, discovered.cost)
	assert.Equal(t, 2, state.frontier.Len(), "unvisited node is pushed again")
}
