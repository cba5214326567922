package api

import (
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"

	"github.com/Starath/GridPath_BE/api/handlers"
)

// Middleware to handle CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Content-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Middleware to transparently decompress brotli-encoded request bodies.
// Large grid definitions compress well, so clients may send
// Content-Encoding: br.
func BrotliRequestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "br" && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 32<<20)
			c.Request.Body = readCloser{reader: brotli.NewReader(c.Request.Body), closer: c.Request.Body}
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

type readCloser struct {
	reader *brotli.Reader
	closer interface{ Close() error }
}

func (rc readCloser) Read(p []byte) (int, error) { return rc.reader.Read(p) }
func (rc readCloser) Close() error               { return rc.closer.Close() }

func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())
	router.Use(BrotliRequestMiddleware())

	router.POST("/api/pathfinding/path", handlers.FindPathHandler)
	router.POST("/api/pathfinding/walkable", handlers.FindWalkableHandler)

	return router
}
