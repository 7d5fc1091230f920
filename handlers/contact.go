package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightpath/models"
	"brightpath/services/notification"
)

// ContactHandler forwards contact-form submissions to the email provider.
type ContactHandler struct {
	Mailer     notification.EmailService
	Configured bool
	Logger     *zap.Logger
}

func NewContactHandler(mailer notification.EmailService, configured bool, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Mailer: mailer, Configured: configured, Logger: logger}
}

// HandleContact handles POST /api/contact.
func (h *ContactHandler) HandleContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name, email and message are required"})
		return
	}

	if !h.Configured {
		h.Logger.Info("email delivery not configured, returning mock contact response",
			zap.String("email", req.Email))
		c.JSON(http.StatusOK, gin.H{
			"success":      false,
			"error":        "Email delivery not configured",
			"mockResponse": true,
		})
		return
	}

	id, err := h.Mailer.SendContact(context.Background(), req)
	if err != nil {
		h.Logger.Warn("contact forwarding failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "failed to deliver message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
