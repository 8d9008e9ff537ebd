package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/usecases"
)

type conversationFixture struct {
	conversations *MockConversationRepository
	messages      *MockMessageRepository
	products      *MockProductRepository
	uow           *MockUnitOfWork
	uc            *usecases.ConversationUsecase
	ctx           context.Context
}

func newConversationFixture() *conversationFixture {
	f := &conversationFixture{
		conversations: new(MockConversationRepository),
		messages:      new(MockMessageRepository),
		products:      new(MockProductRepository),
		uow:           new(MockUnitOfWork),
		ctx:           context.Background(),
	}
	f.uc = usecases.NewConversationUsecase(f.conversations, f.messages, f.products, f.uow)
	f.uow.On("Do", f.ctx, mock.Anything).Return(nil)
	return f
}

func TestConversationUsecase_FindOrCreate(t *testing.T) {
	f := newConversationFixture()
	seller, buyer := uuid.New(), uuid.New()
	product := &entities.Product{ID: uuid.New(), UserID: seller}
	f.products.On("GetByID", f.ctx, product.ID).Return(product, nil)

	f.conversations.On("FindByParticipants", f.ctx, product.ID, buyer, seller).Return(nil, domainerrors.ErrNotFound).Once()
	f.conversations.On("Create", f.ctx, mock.MatchedBy(func(c *entities.Conversation) bool {
		return c.ProductID == product.ID && c.BuyerID == buyer && c.SellerID == seller
	})).Return(nil).Once()

	created, err := f.uc.FindOrCreate(f.ctx, buyer, &entities.StartConversationInput{ProductID: product.ID.String(), SellerID: seller.String()})
	require.NoError(t, err)

	f.conversations.On("FindByParticipants", f.ctx, product.ID, buyer, seller).Return(created, nil).Once()
	again, err := f.uc.FindOrCreate(f.ctx, buyer, &entities.StartConversationInput{ProductID: product.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	f.conversations.AssertNumberOfCalls(t, "Create", 1)
}

func TestConversationUsecase_FindOrCreate_LosesInsertRace(t *testing.T) {
	f := newConversationFixture()
	seller, buyer := uuid.New(), uuid.New()
	product := &entities.Product{ID: uuid.New(), UserID: seller}
	winner := &entities.Conversation{ID: uuid.New(), ProductID: product.ID, BuyerID: buyer, SellerID: seller}

	f.products.On("GetByID", f.ctx, product.ID).Return(product, nil)
	f.conversations.On("FindByParticipants", f.ctx, product.ID, buyer, seller).Return(nil, domainerrors.ErrNotFound).Once()
	f.conversations.On("Create", f.ctx, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()
	f.conversations.On("FindByParticipants", f.ctx, product.ID, buyer, seller).Return(winner, nil).Once()

	got, err := f.uc.FindOrCreate(f.ctx, buyer, &entities.StartConversationInput{ProductID: product.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestConversationUsecase_FindOrCreate_Rejections(t *testing.T) {
	f := newConversationFixture()
	seller := uuid.New()
	product := &entities.Product{ID: uuid.New(), UserID: seller}
	f.products.On("GetByID", f.ctx, product.ID).Return(product, nil)

	_, err := f.uc.FindOrCreate(f.ctx, seller, &entities.StartConversationInput{ProductID: product.ID.String()})
	requireAppError(t, err, http.StatusBadRequest, "You cannot start a conversation about your own listing")

	_, err = f.uc.FindOrCreate(f.ctx, uuid.New(), &entities.StartConversationInput{ProductID: product.ID.String(), SellerID: uuid.NewString()})
	requireAppError(t, err, http.StatusBadRequest, "Seller does not own this product")

	missing := uuid.New()
	f.products.On("GetByID", f.ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = f.uc.FindOrCreate(f.ctx, uuid.New(), &entities.StartConversationInput{ProductID: missing.String()})
	requireAppError(t, err, http.StatusNotFound, "Product not found")
}

func TestConversationUsecase_MessagesAndSend(t *testing.T) {
	f := newConversationFixture()
	buyer, seller := uuid.New(), uuid.New()
	conv := &entities.Conversation{ID: uuid.New(), BuyerID: buyer, SellerID: seller}
	f.conversations.On("GetByID", f.ctx, conv.ID).Return(conv, nil)

	f.messages.On("ListByConversation", f.ctx, conv.ID).Return([]*entities.Message{{ID: uuid.New()}}, nil).Once()
	msgs, err := f.uc.Messages(f.ctx, seller, conv.ID.String())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = f.uc.Messages(f.ctx, uuid.New(), conv.ID.String())
	requireAppError(t, err, http.StatusForbidden, "Not authorized")

	f.messages.On("Create", f.ctx, mock.MatchedBy(func(m *entities.Message) bool {
		return m.Content == "Is it still available?" && m.SenderID == buyer && !m.IsRead
	})).Return(nil).Once()
	f.conversations.On("TouchLastMessage", f.ctx, conv.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	msg, err := f.uc.Send(f.ctx, buyer, &entities.SendMessageInput{ConversationID: conv.ID.String(), Content: "  Is it still available?  "})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), msg.CreatedAt, time.Minute)
	f.uow.AssertNumberOfCalls(t, "Do", 1)

	_, err = f.uc.Send(f.ctx, buyer, &entities.SendMessageInput{ConversationID: conv.ID.String(), Content: "   "})
	requireAppError(t, err, http.StatusBadRequest, "Message content is required")

	_, err = f.uc.Send(f.ctx, uuid.New(), &entities.SendMessageInput{ConversationID: conv.ID.String(), Content: "hi"})
	requireAppError(t, err, http.StatusForbidden, "Not authorized")
}

func TestConversationUsecase_ListAndMarkRead(t *testing.T) {
	f := newConversationFixture()
	buyer := uuid.New()
	conv := &entities.Conversation{ID: uuid.New(), BuyerID: buyer, SellerID: uuid.New()}

	f.conversations.On("ListByUser", f.ctx, buyer).Return([]*entities.Conversation{conv}, nil).Once()
	list, err := f.uc.List(f.ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	f.conversations.On("GetByID", f.ctx, conv.ID).Return(conv, nil).Once()
	f.messages.On("MarkRead", f.ctx, conv.ID, buyer).Return(int64(3), nil).Once()
	updated, err := f.uc.MarkRead(f.ctx, buyer, conv.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	missing := uuid.New()
	f.conversations.On("GetByID", f.ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = f.uc.MarkRead(f.ctx, buyer, missing.String())
	requireAppError(t, err, http.StatusNotFound, "Conversation not found")
}
