package pathfinding

// Grid is the full configuration for one search: the tile layout plus the
// sparse per-coordinate overrides. The zero value is a valid empty grid with
// cardinal topology. All query methods are pure; all mutator methods return
// an updated Grid value and leave the receiver (and every Grid previously
// returned) untouched.
type Grid struct {
	// Tiles holds the tile identifier per cell, rows of columns
	// (Tiles[y][x]). Rows may have different lengths.
	Tiles [][]int
	// WalkableTiles lists the tile identifiers that can be traversed by
	// default.
	WalkableTiles []int
	// Costs maps a tile identifier to its movement cost. Tiles not listed
	// cost 1.
	Costs map[int]float64
	// ExtraCosts overrides the tile-derived cost for single coordinates.
	// An override replaces the tile cost, it is not added to it.
	ExtraCosts CoordinateMap[float64]
	// BlockedCoords marks coordinates unwalkable regardless of tile.
	BlockedCoords CoordinateMap[bool]
	// UnstoppableCoords marks coordinates that can be passed through but
	// not used as a destination.
	UnstoppableCoords CoordinateMap[bool]
	Topology          Topology
}

// TileAt returns the tile identifier at (x, y). ok is false when the
// coordinate resolves to no tile (outside the defined rows, or past the end
// of a short row).
func (g Grid) TileAt(x, y int) (tile int, ok bool) {
	if y < 0 || y >= len(g.Tiles) || x < 0 || x >= len(g.Tiles[y]) {
		return 0, false
	}
	return g.Tiles[y][x], true
}

// InGrid reports whether (x, y) is a searchable coordinate. The grid has
// hard top and left boundaries, but rows past the last defined one are still
// in grid: the space below the tile data is open-ended and bounded only by
// walkability.
func (g Grid) InGrid(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	if y >= len(g.Tiles) {
		return true
	}
	return x < len(g.Tiles[y])
}

// IsWalkable reports whether (x, y) can be traversed: not blocked, and its
// tile is one of the walkable tiles. A coordinate with no tile is never
// walkable.
func (g Grid) IsWalkable(x, y int) bool {
	if g.BlockedCoords[y][x] {
		return false
	}
	tile, ok := g.TileAt(x, y)
	if !ok {
		return false
	}
	return containsTile(g.WalkableTiles, tile)
}

// IsStoppable reports whether (x, y) is a valid destination: walkable and
// not marked unstoppable.
func (g Grid) IsStoppable(x, y int) bool {
	if g.UnstoppableCoords[y][x] {
		return false
	}
	return g.IsWalkable(x, y)
}

// EdgeCost returns the cost of stepping onto (x, y): the per-coordinate
// override when present, else the tile's cost, else 1.
func (g Grid) EdgeCost(x, y int) float64 {
	if row, ok := g.ExtraCosts[y]; ok {
		if cost, ok := row[x]; ok {
			return cost
		}
	}
	tile, ok := g.TileAt(x, y)
	if !ok {
		return 1
	}
	if cost, ok := g.Costs[tile]; ok {
		return cost
	}
	return 1
}

// SetTileCost returns a Grid where the given tile identifier costs cost.
func (g Grid) SetTileCost(tile int, cost float64) Grid {
	costs := make(map[int]float64, len(g.Costs)+1)
	for t, c := range g.Costs {
		costs[t] = c
	}
	costs[tile] = cost
	g.Costs = costs
	return g
}

// AddExtraCost returns a Grid where stepping onto (x, y) costs cost.
func (g Grid) AddExtraCost(x, y int, cost float64) Grid {
	g.ExtraCosts = setCoord(g.ExtraCosts, x, y, cost)
	return g
}

// RemoveExtraCost returns a Grid without a cost override at (x, y).
func (g Grid) RemoveExtraCost(x, y int) Grid {
	g.ExtraCosts = unsetCoord(g.ExtraCosts, x, y)
	return g
}

// ClearExtraCosts returns a Grid with no cost overrides.
func (g Grid) ClearExtraCosts() Grid {
	g.ExtraCosts = CoordinateMap[float64]{}
	return g
}

// AddBlockedCoord returns a Grid where (x, y) is unwalkable.
func (g Grid) AddBlockedCoord(x, y int) Grid {
	g.BlockedCoords = setCoord(g.BlockedCoords, x, y, true)
	return g
}

// RemoveBlockedCoord returns a Grid where (x, y) is no longer blocked.
func (g Grid) RemoveBlockedCoord(x, y int) Grid {
	g.BlockedCoords = unsetCoord(g.BlockedCoords, x, y)
	return g
}

// ClearBlockedCoords returns a Grid with no blocked coordinates.
func (g Grid) ClearBlockedCoords() Grid {
	g.BlockedCoords = CoordinateMap[bool]{}
	return g
}

// AddUnstoppableCoord returns a Grid where (x, y) cannot be a destination.
func (g Grid) AddUnstoppableCoord(x, y int) Grid {
	g.UnstoppableCoords = setCoord(g.UnstoppableCoords, x, y, true)
	return g
}

// RemoveUnstoppableCoord returns a Grid where (x, y) may be a destination
// again.
func (g Grid) RemoveUnstoppableCoord(x, y int) Grid {
	g.UnstoppableCoords = unsetCoord(g.UnstoppableCoords, x, y)
	return g
}

// ClearUnstoppableCoords returns a Grid with no unstoppable coordinates.
func (g Grid) ClearUnstoppableCoords() Grid {
	g.UnstoppableCoords = CoordinateMap[bool]{}
	return g
}

// Helper to check if a slice contains a tile identifier
func containsTile(tiles []int, tile int) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}

func setCoord[V any](m CoordinateMap[V], x, y int, value V) CoordinateMap[V] {
	result := cloneCoordinateMap(m)
	row, ok := result[y]
	if !ok {
		row = map[int]V{}
		result[y] = row
	}
	row[x] = value
	return result
}

func unsetCoord[V any](m CoordinateMap[V], x, y int) CoordinateMap[V] {
	result := cloneCoordinateMap(m)
	if row, ok := result[y]; ok {
		delete(row, x)
		if len(row) == 0 {
			delete(result, y)
		}
	}
	return result
}
