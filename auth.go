package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/auth"
)

// sessionRequired rejects requests without a valid session cookie before any
// handler touches the store.
func sessionRequired(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || !gate.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func setupAuthRoutes(r *gin.Engine, gate *auth.Gate) {
	r.POST("/api/auth/login", func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		token, err := gate.Login(req.Password)
		if err != nil {
			log.Printf("Failed admin login attempt from %s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.POST("/api/auth/logout", func(c *gin.Context) {
		c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.GET("/api/auth/check", func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		c.JSON(http.StatusOK, gin.H{"authenticated": err == nil && gate.Verify(token)})
	})
}
