package entities

import (
	"time"

	"github.com/google/uuid"
)

// Conversation ties a buyer and a seller to one listing.
type Conversation struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	BuyerID       uuid.UUID `json:"buyerId"`
	SellerID      uuid.UUID `json:"sellerId"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasParticipant reports whether userID is the buyer or the seller.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.BuyerID == userID || c.SellerID == userID
}

// Message is one chat line inside a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StartConversationInput opens (or reopens) a conversation about a listing.
type StartConversationInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	SellerID  string `json:"sellerId" binding:"omitempty,uuid"`
}

// SendMessageInput posts a message to a conversation.
type SendMessageInput struct {
	ConversationID string `json:"conversationId" binding:"required,uuid"`
	Content        string `json:"content" binding:"required,min=1,max=5000"`
}
