package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func setupContactRoutes(r *gin.Engine, cfg config) {
	r.POST("/contact", func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact payload"})
			return
		}

		if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not configured"})
			return
		}

		if err := sendContactEmail(cfg, req); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

func sendContactEmail(cfg config, req contactRequest) error {
	toEmail := cfg.ToEmail
	if toEmail == "" {
		toEmail = cfg.SMTPUser
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", req.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, req.Name, req.Email, req.Message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.SMTPUser + "\r\n" +
		"Reply-To: " + req.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	if err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.SMTPUser, []string{toEmail}, msg); err != nil {
		log.Printf("Error sending contact email: %v", err)
		return err
	}

	log.Printf("Contact email sent from %s (%s)", req.Name, req.Email)
	return nil
}
