package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/multitool_api/internal/models"
	"github.com/GTDGit/multitool_api/internal/service"
	"github.com/GTDGit/multitool_api/internal/utils"
)

// ChatHandler serves the AI assistant endpoint.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat answers a user prompt, calling product and YouTube tools as needed.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), req.Prompt)
	switch {
	case err == nil:
		utils.Success(c, http.StatusOK, "Chat completed successfully", resp)
	case errors.Is(err, utils.ErrPromptRequired):
		utils.Error(c, http.StatusBadRequest, "Prompt is required")
	case errors.Is(err, utils.ErrLLMNotConfigured):
		utils.Error(c, http.StatusServiceUnavailable, "Chat assistant is not configured")
	case errors.Is(err, utils.ErrLLMUnavailable):
		logError(c, err, "chat completion failed")
		utils.Error(c, http.StatusBadGateway, "An error occurred while processing the chat request")
	default:
		logError(c, err, "chat failed")
		utils.Error(c, http.StatusInternalServerError, "An error occurred while processing the chat request")
	}
}
