package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Starath/GridPath_BE/loadgrids"
	"github.com/Starath/GridPath_BE/pathfinding"
	"github.com/Starath/GridPath_BE/pathfinding/astar"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		runDemo()
		return
	}
	StartServer()
}

// runDemo loads the sample grid and answers path queries typed on stdin.
func runDemo() {
	gridPath := "grids/sample_grid.json"
	if len(os.Args) > 2 {
		gridPath = os.Args[2]
	}

	fmt.Printf("Loading grid from %s...\n", gridPath)
	grid, err := loadgrids.LoadGrid(gridPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load grid from '%s': %v\n", gridPath, err)
	}
	fmt.Println(strings.Repeat("=", 50))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nEnter startX startY endX endY (or 'exit'): ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)

		if strings.ToLower(line) == "exit" {
			break
		}

		var startX, startY, endX, endY int
		if _, err := fmt.Sscanf(line, "%d %d %d %d", &startX, &startY, &endX, &endY); err != nil {
			fmt.Println("Expected four integers, e.g.: 0 0 4 4")
			continue
		}

		start := time.Now()
		path, found := astar.FindPath(grid, startX, startY, endX, endY)
		duration := time.Since(start)

		fmt.Printf("\n--- FindPath (%d,%d) -> (%d,%d) ---\n", startX, startY, endX, endY)
		fmt.Printf("Execution Time: %s\n", duration)
		if !found {
			fmt.Println("- No path found.")
		} else if len(path) == 0 {
			fmt.Println("- Start equals destination, empty path.")
		} else {
			fmt.Printf("- Path (%d steps): %s\n", len(path)-1, formatPath(path))
		}

		start = time.Now()
		walkable := astar.FindWalkable(grid, []pathfinding.Coord{{X: startX, Y: startY}})
		duration = time.Since(start)
		fmt.Printf("- Reachable cells from start: %d (computed in %s)\n", len(walkable), duration)
		fmt.Println(strings.Repeat("=", 50))
	}
	fmt.Println("\n===== Done =====")
}

func formatPath(path []pathfinding.Coord) string {
	steps := make([]string, len(path))
	for i, coord := range path {
		steps[i] = fmt.Sprintf("(%d,%d)", coord.X, coord.Y)
	}
	return strings.Join(steps, " -> ")
}
