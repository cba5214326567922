package main

import (
	"log"
	"os"

	"github.com/Starath/GridPath_BE/api"
)

// StartServer runs the gin API server. The port comes from the PORT
// environment variable, defaulting to 8080.
func StartServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := api.SetupRouter()

	log.Printf("[INFO] Starting pathfinding server on port %s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to run server: %v\n", err)
	}
}
