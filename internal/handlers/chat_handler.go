package handler

import (
	"net/http"
	"strings"

	"invoice-analytics-backend/internal/logger"
	"invoice-analytics-backend/internal/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	client *chat.Client
}

func NewChatHandler(client *chat.Client) *ChatHandler {
	return &ChatHandler{client: client}
}

// ChatWithData handles POST /api/chat-with-data. The query must be a
// non-empty string; anything else is rejected before calling upstream.
func (h *ChatHandler) ChatWithData(c *gin.Context) {
	var payload struct {
		Query interface{} `json:"query"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	query, ok := payload.Query.(string)
	if !ok || strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required and must be a non-empty string"})
		return
	}

	body, err := h.client.Query(c.Request.Context(), query)
	if err != nil {
		logger.L().Error("chat proxy request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
