package main

import (
	"log"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/sparmeets/portfolio-backend/internal/auth"
	"github.com/sparmeets/portfolio-backend/internal/blogfeed"
	"github.com/sparmeets/portfolio-backend/internal/metrics"
	"github.com/sparmeets/portfolio-backend/internal/portfolio"
	"github.com/sparmeets/portfolio-backend/internal/visits"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	store := portfolio.NewStore(filepath.Join(cfg.DataDir, "portfolio-data.json"))
	if err := store.Init(); err != nil {
		log.Fatal("Failed to initialize portfolio store:", err)
	}

	counter := visits.NewCounter(filepath.Join(cfg.DataDir, "visit-count.json"))
	gate := auth.NewGate(cfg.AdminPassword)
	cache := blogfeed.NewCache(blogfeed.NewFetcher(cfg.BlogFeedURL).Fetch)

	tracker, err := metrics.Open(cfg.MetricsDB)
	if err != nil {
		log.Fatal("Failed to open metrics database:", err)
	}
	defer tracker.Close()

	r := gin.Default()
	r.Use(visitorTrackingMiddleware(tracker))

	setupPortfolioRoutes(r, store, gate)
	setupBlogRoutes(r, cache)
	setupVisitRoutes(r, counter)
	setupAuthRoutes(r, gate)
	setupAdminRoutes(r, gate, tracker)
	setupContactRoutes(r, cfg)

	r.Run(":" + cfg.Port)
}
