package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

type config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	BlogFeedURL   string `env:"BLOG_FEED_URL" envDefault:"https://medium.com/feed/@sparmeet162000"`
	MetricsDB     string `env:"METRICS_DB"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	ToEmail  string `env:"TO_EMAIL"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	// Default credentials for development (remove in production)
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	if cfg.MetricsDB == "" {
		cfg.MetricsDB = filepath.Join(cfg.DataDir, "metrics.db")
	}
	return cfg, nil
}
