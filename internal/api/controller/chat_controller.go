package controller

import (
	"collaband/CollaBand/internal/api/middleware"
	"collaband/CollaBand/internal/api/response"
	"collaband/CollaBand/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatController handles chat retrieval.
type ChatController struct {
	chatService service.ChatService
}

// NewChatController creates a new ChatController.
func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// GetChat fetches the caller's chat, creating it on first access.
func (cc *ChatController) GetChat(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	chat, err := cc.chatService.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Chat gotten",
		"data":    chat,
	})
}
