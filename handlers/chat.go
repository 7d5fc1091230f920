package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightpath/models"
	"brightpath/services/intelligence"
)

const fallbackReply = "Thanks for reaching out! The assistant is offline right now - " +
	"please use the contact form or the booking page and we'll get back to you."

// ChatHandler forwards visitor transcripts to the language model and runs
// the fuzzy appointment extractor over the exchange. Stateless: the widget
// resends the full transcript each turn.
type ChatHandler struct {
	Svc        intelligence.ChatService
	Configured bool
	Logger     *zap.Logger
}

func NewChatHandler(svc intelligence.ChatService, configured bool, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Configured: configured, Logger: logger}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var input struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "messages is required"})
		return
	}

	if !h.Configured {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      fallbackReply,
			"mockResponse": true,
		})
		return
	}

	reply, err := h.Svc.Reply(context.Background(), input.Messages)
	if err != nil {
		h.Logger.Warn("chat reply failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "assistant is unavailable"})
		return
	}

	// Scan the model reply first, then the visitor's latest words for
	// anything the reply missed. Results are a guess the UI may offer back
	// to the visitor; booking revalidates everything.
	extracted := intelligence.ExtractAppointment(reply)
	if last := lastUserMessage(input.Messages); last != "" {
		extracted = intelligence.MergeExtractions(extracted, intelligence.ExtractAppointment(last))
	}

	resp := gin.H{"success": true, "message": reply}
	if extracted != (models.ExtractedAppointment{}) {
		resp["appointmentDetails"] = extracted
	}
	c.JSON(http.StatusOK, resp)
}

func lastUserMessage(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
