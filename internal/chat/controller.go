package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService ChatServiceAPI
}

// GET /api/chat
func (cc *ChatController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": cc.ChatService.History()})
}

// POST /api/chat
func (cc *ChatController) Send(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := cc.ChatService.Send(c.Request.Context(), strings.TrimSpace(body.Message))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// DELETE /api/chat
func (cc *ChatController) Clear(c *gin.Context) {
	if err := cc.ChatService.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GET /api/chat/quick-actions
func (cc *ChatController) GetQuickActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quick_actions": cc.ChatService.QuickActions()})
}
