package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/auth"
	"github.com/sparmeets/portfolio-backend/internal/metrics"
)

// visitorTrackingMiddleware records page hits with hashed IPs. Auth and admin
// traffic is not tracked, and the Do Not Track header is honored.
func visitorTrackingMiddleware(tracker *metrics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/auth") ||
			strings.HasPrefix(path, "/api/admin") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go tracker.Record(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func setupAdminRoutes(r *gin.Engine, gate *auth.Gate, tracker *metrics.Tracker) {
	admin := r.Group("/api/admin")
	admin.Use(sessionRequired(gate))

	admin.GET("/stats", func(c *gin.Context) {
		stats, err := tracker.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
