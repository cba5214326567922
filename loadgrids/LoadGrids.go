package loadgrids

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Starath/GridPath_BE/pathfinding"
	"github.com/andybalholm/brotli"
)

// CoordCostInput is one per-coordinate cost override in a grid definition.
type CoordCostInput struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Cost float64 `json:"cost"`
}

// GridInput is the JSON document describing a grid. Every field is optional;
// the zero document describes an empty cardinal grid. Costs is keyed by tile
// identifier (JSON object keys are strings, so "2": 4 gives tile 2 cost 4).
type GridInput struct {
	Tiles             [][]int             `json:"tiles"`
	WalkableTiles     []int               `json:"walkableTiles"`
	Costs             map[string]float64  `json:"costs"`
	ExtraCosts        []CoordCostInput    `json:"extraCosts"`
	BlockedCoords     []pathfinding.Coord `json:"blockedCoords"`
	UnstoppableCoords []pathfinding.Coord `json:"unstoppableCoords"`
	Topology          string              `json:"topology"`
}

// ToGrid validates the document and builds the grid configuration.
func (input GridInput) ToGrid() (pathfinding.Grid, error) {
	topology, err := parseTopology(input.Topology)
	if err != nil {
		return pathfinding.Grid{}, err
	}

	costs := make(map[int]float64, len(input.Costs))
	for key, cost := range input.Costs {
		tile, err := strconv.Atoi(key)
		if err != nil {
			return pathfinding.Grid{}, fmt.Errorf("invalid tile identifier %q in costs: %w", key, err)
		}
		if cost <= 0 {
			return pathfinding.Grid{}, fmt.Errorf("tile %d has non-positive cost %v", tile, cost)
		}
		costs[tile] = cost
	}

	extraCosts := pathfinding.CoordinateMap[float64]{}
	for _, extra := range input.ExtraCosts {
		if extra.Cost <= 0 {
			return pathfinding.Grid{}, fmt.Errorf("extra cost at (%d,%d) is non-positive: %v", extra.X, extra.Y, extra.Cost)
		}
		extraCosts = pathfinding.ToCoordinateMap([]pathfinding.Coord{{X: extra.X, Y: extra.Y}}, extraCosts, extra.Cost)
	}

	return pathfinding.Grid{
		Tiles:             input.Tiles,
		WalkableTiles:     input.WalkableTiles,
		Costs:             costs,
		ExtraCosts:        extraCosts,
		BlockedCoords:     pathfinding.ToCoordinateMap(input.BlockedCoords, nil, true),
		UnstoppableCoords: pathfinding.ToCoordinateMap(input.UnstoppableCoords, nil, true),
		Topology:          topology,
	}, nil
}

func parseTopology(name string) (pathfinding.Topology, error) {
	switch name {
	case "", "cardinal":
		return pathfinding.TopologyCardinal, nil
	case "hex":
		return pathfinding.TopologyHex, nil
	case "intercardinal":
		return pathfinding.TopologyIntercardinal, nil
	default:
		return pathfinding.TopologyCardinal, fmt.Errorf("unknown topology %q (want cardinal, hex or intercardinal)", name)
	}
}

// LoadGrid reads a grid definition from a JSON file. Files ending in ".br"
// are decompressed with brotli first.
func LoadGrid(filepath string) (pathfinding.Grid, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return pathfinding.Grid{}, err
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(filepath, ".br") {
		reader = brotli.NewReader(file)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return pathfinding.Grid{}, err
	}

	var input GridInput
	if err := json.Unmarshal(data, &input); err != nil {
		return pathfinding.Grid{}, fmt.Errorf("parsing grid file '%s': %w", filepath, err)
	}

	grid, err := input.ToGrid()
	if err != nil {
		return pathfinding.Grid{}, fmt.Errorf("invalid grid file '%s': %w", filepath, err)
	}

	log.Printf("[INFO] Grid successfully loaded from '%s'. Rows: %d. Walkable Tiles: %d. Topology: %s.\n",
		filepath, len(grid.Tiles), len(grid.WalkableTiles), topologyName(grid.Topology))

	return grid, nil
}

func topologyName(topology pathfinding.Topology) string {
	switch topology {
	case pathfinding.TopologyHex:
		return "hex"
	case pathfinding.TopologyIntercardinal:
		return "intercardinal"
	default:
		return "cardinal"
	}
}
