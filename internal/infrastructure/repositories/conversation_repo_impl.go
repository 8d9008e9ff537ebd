package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/infrastructure/models"
)

// ConversationRepository implements conversation data operations
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create inserts a conversation
func (r *ConversationRepository) Create(ctx context.Context, conversation *entities.Conversation) error {
	m := &models.Conversation{
		ID:            conversation.ID,
		ProductID:     conversation.ProductID,
		BuyerID:       conversation.BuyerID,
		SellerID:      conversation.SellerID,
		LastMessageAt: conversation.LastMessageAt,
		CreatedAt:     conversation.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Conversation, error) {
	var m models.Conversation
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toConversationEntity(&m), nil
}

// FindByParticipants looks up the conversation for one (product, buyer, seller) triple
func (r *ConversationRepository) FindByParticipants(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*entities.Conversation, error) {
	var m models.Conversation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("product_id = ? AND buyer_id = ? AND seller_id = ?", productID, buyerID, sellerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toConversationEntity(&m), nil
}

// ListByUser returns conversations the user takes part in, most recent activity first
func (r *ConversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	var conversationModels []models.Conversation
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, err
	}

	conversations := make([]*entities.Conversation, 0, len(conversationModels))
	for i := range conversationModels {
		conversations = append(conversations, toConversationEntity(&conversationModels[i]))
	}
	return conversations, nil
}

// TouchLastMessage bumps last_message_at
func (r *ConversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toConversationEntity(m *models.Conversation) *entities.Conversation {
	return &entities.Conversation{
		ID:            m.ID,
		ProductID:     m.ProductID,
		BuyerID:       m.BuyerID,
		SellerID:      m.SellerID,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
	}
}

// MessageRepository implements message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	m := &models.Message{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByConversation returns the messages of a conversation, oldest first
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entities.Message, error) {
	var messageModels []models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, 0, len(messageModels))
	for i := range messageModels {
		m := &messageModels[i]
		messages = append(messages, &entities.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
	}
	return messages, nil
}

// MarkRead marks the unread messages readerID received in a conversation
func (r *MessageRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
