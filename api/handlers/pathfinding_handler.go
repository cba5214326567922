package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Starath/GridPath_BE/loadgrids"
	"github.com/Starath/GridPath_BE/pathfinding"
	"github.com/Starath/GridPath_BE/pathfinding/astar"
)

type PathRequest struct {
	Grid          loadgrids.GridInput `json:"grid"`
	StartX        int                 `json:"startX"`
	StartY        int                 `json:"startY"`
	EndX          int                 `json:"endX"`
	EndY          int                 `json:"endY"`
	CostThreshold *float64            `json:"costThreshold"`
}

type PathResponse struct {
	Path          []pathfinding.Coord `json:"path"`
	Found         bool                `json:"found"`
	Error         string              `json:"error,omitempty"`
	ExecutionTime float64             `json:"executionTimeMs"`
}

type WalkableRequest struct {
	Grid          loadgrids.GridInput `json:"grid"`
	Coords        []pathfinding.Coord `json:"coords"`
	CostThreshold *float64            `json:"costThreshold"`
}

type WalkableResponse struct {
	Coords        []pathfinding.Coord `json:"coords"`
	Error         string              `json:"error,omitempty"`
	ExecutionTime float64             `json:"executionTimeMs"`
}

// handles path search between two coordinates
func FindPathHandler(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, PathResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	grid, err := req.Grid.ToGrid()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, PathResponse{Error: "Invalid grid: " + err.Error()})
		return
	}

	start := time.Now()
	path, found := astar.FindPath(grid, req.StartX, req.StartY, req.EndX, req.EndY, searchOptions(req.CostThreshold)...)
	executionTime := time.Since(start).Seconds() * 1000

	log.Printf("[INFO] FindPath (%d,%d)->(%d,%d): found=%t, len=%d", req.StartX, req.StartY, req.EndX, req.EndY, found, len(path))

	c.JSON(http.StatusOK, PathResponse{
		Path:          path,
		Found:         found,
		ExecutionTime: executionTime,
	})
}

// handles reachable-region flood fill from one or more coordinates
func FindWalkableHandler(c *gin.Context) {
	var req WalkableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, WalkableResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	grid, err := req.Grid.ToGrid()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, WalkableResponse{Error: "Invalid grid: " + err.Error()})
		return
	}

	if len(req.Coords) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, WalkableResponse{Error: "At least one start coordinate is required"})
		return
	}

	start := time.Now()
	coords := astar.FindWalkable(grid, req.Coords, searchOptions(req.CostThreshold)...)
	executionTime := time.Since(start).Seconds() * 1000

	log.Printf("[INFO] FindWalkable from %d start(s): %d reachable", len(req.Coords), len(coords))

	c.JSON(http.StatusOK, WalkableResponse{
		Coords:        coords,
		ExecutionTime: executionTime,
	})
}

func searchOptions(costThreshold *float64) []astar.Option {
	if costThreshold == nil {
		return nil
	}
	return []astar.Option{astar.WithCostThreshold(*costThreshold)}
}
