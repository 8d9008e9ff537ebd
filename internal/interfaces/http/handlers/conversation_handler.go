package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/interfaces/http/response"
)

// ConversationService is the messaging logic behind ConversationHandler
type ConversationService interface {
	FindOrCreate(ctx context.Context, buyerID uuid.UUID, input *entities.StartConversationInput) (*entities.Conversation, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error)
	Messages(ctx context.Context, userID uuid.UUID, rawConversationID string) ([]*entities.Message, error)
	Send(ctx context.Context, senderID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error)
	MarkRead(ctx context.Context, userID uuid.UUID, rawConversationID string) (int64, error)
}

// ConversationHandler handles conversation and message endpoints
type ConversationHandler struct {
	conversationService ConversationService
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ListConversations handles GET /api/conversations
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	conversations, err := h.conversationService.List(c.Request.Context(), authCtx.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"conversations": conversations})
}

// StartConversation handles POST /api/conversations. An existing
// conversation for the same buyer and listing is returned as is.
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.StartConversationInput
	if !bindJSON(c, &input) {
		return
	}

	conversation, err := h.conversationService.FindOrCreate(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"conversation": conversation})
}

// ListMessages handles GET /api/conversations/:id/messages
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	messages, err := h.conversationService.Messages(c.Request.Context(), authCtx.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// MarkRead handles POST /api/conversations/:id/read
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	updated, err := h.conversationService.MarkRead(c.Request.Context(), authCtx.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

// SendMessage handles POST /api/messages
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.SendMessageInput
	if !bindJSON(c, &input) {
		return
	}

	message, err := h.conversationService.Send(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": message})
}
