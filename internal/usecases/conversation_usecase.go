package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/domain/repositories"
)

// ConversationUsecase handles buyer/seller messaging
type ConversationUsecase struct {
	conversationRepo repositories.ConversationRepository
	messageRepo      repositories.MessageRepository
	productRepo      repositories.ProductRepository
	uow              repositories.UnitOfWork
}

// NewConversationUsecase creates a new conversation usecase
func NewConversationUsecase(
	conversationRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	productRepo repositories.ProductRepository,
	uow repositories.UnitOfWork,
) *ConversationUsecase {
	return &ConversationUsecase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		productRepo:      productRepo,
		uow:              uow,
	}
}

// FindOrCreate returns the conversation between the caller and the listing's
// owner about that listing, opening one on first contact.
func (u *ConversationUsecase) FindOrCreate(ctx context.Context, buyerID uuid.UUID, input *entities.StartConversationInput) (*entities.Conversation, error) {
	productID, err := parseID(input.ProductID, MsgProductNotFound)
	if err != nil {
		return nil, err
	}
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgProductNotFound)
		}
		return nil, err
	}

	sellerID := product.UserID
	if raw := strings.TrimSpace(input.SellerID); raw != "" {
		claimed, err := uuid.Parse(raw)
		if err != nil || claimed != sellerID {
			return nil, domainerrors.BadRequest(MsgSellerMismatch)
		}
	}
	if sellerID == buyerID {
		return nil, domainerrors.BadRequest(MsgSelfConversation)
	}

	existing, err := u.conversationRepo.FindByParticipants(ctx, productID, buyerID, sellerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := nowUTC()
	conversation := &entities.Conversation{
		ID:            newID(),
		ProductID:     productID,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		LastMessageAt: now,
		CreatedAt:     now,
	}
	if err := u.conversationRepo.Create(ctx, conversation); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.conversationRepo.FindByParticipants(ctx, productID, buyerID, sellerID)
		}
		return nil, err
	}
	return conversation, nil
}

// List returns the caller's conversations, most recently active first.
func (u *ConversationUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	return u.conversationRepo.ListByUser(ctx, userID)
}

// Messages returns a conversation's messages, oldest first.
func (u *ConversationUsecase) Messages(ctx context.Context, userID uuid.UUID, rawConversationID string) ([]*entities.Message, error) {
	conversation, err := u.participantOf(ctx, userID, rawConversationID)
	if err != nil {
		return nil, err
	}
	return u.messageRepo.ListByConversation(ctx, conversation.ID)
}

// Send posts a message and bumps the conversation's activity time in one
// unit of work.
func (u *ConversationUsecase) Send(ctx context.Context, senderID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.BadRequest(MsgEmptyMessage)
	}
	conversation, err := u.participantOf(ctx, senderID, input.ConversationID)
	if err != nil {
		return nil, err
	}

	message := &entities.Message{
		ID:             newID(),
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      nowUTC(),
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.messageRepo.Create(txCtx, message); err != nil {
			return err
		}
		return u.conversationRepo.TouchLastMessage(txCtx, conversation.ID, message.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// MarkRead marks the other participant's messages as read and returns how
// many changed.
func (u *ConversationUsecase) MarkRead(ctx context.Context, userID uuid.UUID, rawConversationID string) (int64, error) {
	conversation, err := u.participantOf(ctx, userID, rawConversationID)
	if err != nil {
		return 0, err
	}
	return u.messageRepo.MarkRead(ctx, conversation.ID, userID)
}

func (u *ConversationUsecase) participantOf(ctx context.Context, userID uuid.UUID, rawID string) (*entities.Conversation, error) {
	id, err := parseID(rawID, MsgConversationNotFound)
	if err != nil {
		return nil, err
	}
	conversation, err := u.conversationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgConversationNotFound)
		}
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, domainerrors.Forbidden(MsgNotAuthorized)
	}
	return conversation, nil
}
