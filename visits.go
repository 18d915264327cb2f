package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/visits"
)

func setupVisitRoutes(r *gin.Engine, counter *visits.Counter) {
	r.GET("/api/visits", func(c *gin.Context) {
		count, err := counter.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visit count"})
			return
		}
		c.JSON(http.StatusOK, count)
	})

	r.POST("/api/visits", func(c *gin.Context) {
		count, err := counter.Increment()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment visit count"})
			return
		}
		c.JSON(http.StatusOK, count)
	})
}
