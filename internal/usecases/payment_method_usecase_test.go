package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/usecases"
)

func TestPaymentMethodUsecase_CreateFirstBecomesDefault(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewPaymentMethodUsecase(repo, uow)
	ctx := context.Background()
	user := uuid.New()
	uow.On("Do", ctx, mock.Anything).Return(nil)

	input := &entities.CreatePaymentMethodInput{Last4: "4242", Brand: "Visa", ExpiryMonth: 12, ExpiryYear: 28}

	repo.On("CountByUser", ctx, user).Return(int64(0), nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(m *entities.PaymentMethod) bool { return m.IsDefault })).Return(nil).Once()
	first, err := uc.Create(ctx, user, input)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	repo.On("CountByUser", ctx, user).Return(int64(1), nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(m *entities.PaymentMethod) bool { return !m.IsDefault })).Return(nil).Once()
	second, err := uc.Create(ctx, user, input)
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	_, err = uc.Create(ctx, user, &entities.CreatePaymentMethodInput{Last4: "42", Brand: "Visa", ExpiryMonth: 1, ExpiryYear: 28})
	requireAppError(t, err, http.StatusBadRequest, "")
	_, err = uc.Create(ctx, user, &entities.CreatePaymentMethodInput{Last4: "4242", Brand: "Visa", ExpiryMonth: 13, ExpiryYear: 28})
	requireAppError(t, err, http.StatusBadRequest, "")
	repo.AssertExpectations(t)
}

func TestPaymentMethodUsecase_DeleteAndSetDefault(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewPaymentMethodUsecase(repo, uow)
	ctx := context.Background()
	user := uuid.New()
	id := uuid.New()
	uow.On("Do", ctx, mock.Anything).Return(nil)

	repo.On("Delete", ctx, id, user).Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, user, id.String()))

	repo.On("Delete", ctx, id, user).Return(domainerrors.ErrNotFound).Once()
	requireAppError(t, uc.Delete(ctx, user, id.String()), http.StatusNotFound, "Payment method not found")
	requireAppError(t, uc.Delete(ctx, user, "junk"), http.StatusNotFound, "Payment method not found")

	repo.On("SetDefault", ctx, user, id).Return(nil).Once()
	repo.On("GetByIDAndUser", ctx, id, user).Return(&entities.PaymentMethod{ID: id, UserID: user, IsDefault: true}, nil).Once()
	method, err := uc.SetDefault(ctx, user, id.String())
	require.NoError(t, err)
	assert.True(t, method.IsDefault)

	other := uuid.New()
	repo.On("SetDefault", ctx, user, other).Return(domainerrors.ErrNotFound).Once()
	_, err = uc.SetDefault(ctx, user, other.String())
	requireAppError(t, err, http.StatusNotFound, "Payment method not found")

	repo.On("ListByUser", ctx, user).Return([]*entities.PaymentMethod{}, nil).Once()
	list, err := uc.List(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, list)
}
