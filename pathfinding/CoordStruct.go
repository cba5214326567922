package pathfinding

// Coord identifies one grid cell. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Topology selects the neighbor set used when expanding a cell.
type Topology int

const (
	// TopologyCardinal moves N, E, S, W.
	TopologyCardinal Topology = iota
	// TopologyHex adds the NE and SW diagonals to the cardinal moves.
	TopologyHex
	// TopologyIntercardinal moves in all eight directions.
	TopologyIntercardinal
)

// CoordinateMap is a sparse per-coordinate table, keyed row first then
// column (m[y][x]).
type CoordinateMap[V any] map[int]map[int]V

// ToCoordinateMap folds coords into a copy of base, assigning value to every
// given coordinate. Pass nil as base to start from an empty table.
func ToCoordinateMap[V any](coords []Coord, base CoordinateMap[V], value V) CoordinateMap[V] {
	result := cloneCoordinateMap(base)
	for _, coord := range coords {
		row, ok := result[coord.Y]
		if !ok {
			row = map[int]V{}
			result[coord.Y] = row
		}
		row[coord.X] = value
	}
	return result
}

// cloneCoordinateMap deep-copies both map levels so mutator methods on Grid
// never alias tables held by earlier Grid values.
func cloneCoordinateMap[V any](source CoordinateMap[V]) CoordinateMap[V] {
	result := make(CoordinateMap[V], len(source))
	for y, row := range source {
		newRow := make(map[int]V, len(row))
		for x, value := range row {
			newRow[x] = value
		}
		result[y] = newRow
	}
	return result
}
