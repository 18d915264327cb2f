package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/blogfeed"
)

func setupBlogRoutes(r *gin.Engine, cache *blogfeed.Cache) {
	r.GET("/api/blogs", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		res, err := cache.Get(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching blog feed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch blogs",
				"blogs": []blogfeed.Post{},
			})
			return
		}

		if res.Stale {
			c.JSON(http.StatusOK, gin.H{
				"blogs":  res.Posts,
				"cached": true,
				"stale":  true,
			})
			return
		}

		c.Header("Access-Control-Allow-Methods", "GET")
		c.Header("Cache-Control", "public, s-maxage=86400, stale-while-revalidate=43200")

		if res.Cached {
			c.JSON(http.StatusOK, gin.H{
				"blogs":    res.Posts,
				"cached":   true,
				"cacheAge": res.CacheAge,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"blogs":  res.Posts,
			"cached": false,
		})
	})
}
