package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/auth"
	"github.com/sparmeets/portfolio-backend/internal/portfolio"
)

func setupPortfolioRoutes(r *gin.Engine, store *portfolio.Store, gate *auth.Gate) {
	r.GET("/api/portfolio", func(c *gin.Context) {
		doc, err := store.Read()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio data"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})

	admin := r.Group("/api/portfolio")
	admin.Use(sessionRequired(gate))

	// Personal info, skills, education, and interests edits replace the whole
	// document: the admin UI fetches the document, changes one field, and puts
	// it back.
	admin.PUT("", func(c *gin.Context) {
		var doc portfolio.PortfolioData
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid portfolio payload"})
			return
		}
		if err := store.Replace(&doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
	})

	admin.POST("/experiences", func(c *gin.Context) {
		var exp portfolio.Experience
		if err := c.ShouldBindJSON(&exp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience payload"})
			return
		}
		created, err := store.InsertExperience(exp)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add experience"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "experience": created})
	})

	admin.PUT("/experiences", func(c *gin.Context) {
		var exp portfolio.Experience
		if err := c.ShouldBindJSON(&exp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience payload"})
			return
		}
		if exp.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		updated, err := store.UpdateExperience(exp)
		if errors.Is(err, portfolio.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update experience"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "experience": updated})
	})

	admin.DELETE("/experiences", func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		if err := store.DeleteExperience(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete experience"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	admin.POST("/projects", func(c *gin.Context) {
		var proj portfolio.Project
		if err := c.ShouldBindJSON(&proj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project payload"})
			return
		}
		created, err := store.InsertProject(proj)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add project"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "project": created})
	})

	admin.PUT("/projects", func(c *gin.Context) {
		var proj portfolio.Project
		if err := c.ShouldBindJSON(&proj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project payload"})
			return
		}
		if proj.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		updated, err := store.UpdateProject(proj)
		if errors.Is(err, portfolio.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "project": updated})
	})

	admin.DELETE("/projects", func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		if err := store.DeleteProject(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
