package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
)

// ConversationRepository defines conversation data operations
type ConversationRepository interface {
	// Create returns domainerrors.ErrAlreadyExists when the
	// (product, buyer, seller) triple is taken.
	Create(ctx context.Context, conversation *entities.Conversation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Conversation, error)
	FindByParticipants(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*entities.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error)
	TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error
}

// MessageRepository defines message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entities.Message, error)
	// MarkRead marks every message in the conversation not sent by readerID as read.
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)
}
