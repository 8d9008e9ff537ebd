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

// PaymentMethodUsecase manages stored card metadata
type PaymentMethodUsecase struct {
	paymentMethodRepo repositories.PaymentMethodRepository
	uow               repositories.UnitOfWork
}

// NewPaymentMethodUsecase creates a new payment method usecase
func NewPaymentMethodUsecase(paymentMethodRepo repositories.PaymentMethodRepository, uow repositories.UnitOfWork) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{paymentMethodRepo: paymentMethodRepo, uow: uow}
}

// List returns the caller's payment methods, newest first.
func (u *PaymentMethodUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.PaymentMethod, error) {
	return u.paymentMethodRepo.ListByUser(ctx, userID)
}

// Create stores a payment method. A user's first method becomes the default.
func (u *PaymentMethodUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreatePaymentMethodInput) (*entities.PaymentMethod, error) {
	method := &entities.PaymentMethod{
		ID:          newID(),
		UserID:      userID,
		Last4:       strings.TrimSpace(input.Last4),
		Brand:       strings.TrimSpace(input.Brand),
		ExpiryMonth: input.ExpiryMonth,
		ExpiryYear:  input.ExpiryYear,
		CreatedAt:   nowUTC(),
	}
	if len(method.Last4) != 4 {
		return nil, domainerrors.BadRequest("last4 must be exactly 4 digits")
	}
	if input.ExpiryMonth < 1 || input.ExpiryMonth > 12 {
		return nil, domainerrors.BadRequest("expiryMonth must be between 1 and 12")
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		count, err := u.paymentMethodRepo.CountByUser(txCtx, userID)
		if err != nil {
			return err
		}
		method.IsDefault = count == 0
		return u.paymentMethodRepo.Create(txCtx, method)
	})
	if err != nil {
		return nil, err
	}
	return method, nil
}

// Delete removes one of the caller's payment methods. Other users' ids are
// reported as not found.
func (u *PaymentMethodUsecase) Delete(ctx context.Context, userID uuid.UUID, rawID string) error {
	id, err := parseID(rawID, MsgPaymentMethodNotFound)
	if err != nil {
		return err
	}
	if err := u.paymentMethodRepo.Delete(ctx, id, userID); err != nil {
		return notFoundAs(err, MsgPaymentMethodNotFound)
	}
	return nil
}

// SetDefault makes one payment method the caller's default.
func (u *PaymentMethodUsecase) SetDefault(ctx context.Context, userID uuid.UUID, rawID string) (*entities.PaymentMethod, error) {
	id, err := parseID(rawID, MsgPaymentMethodNotFound)
	if err != nil {
		return nil, err
	}
	var method *entities.PaymentMethod
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.paymentMethodRepo.SetDefault(txCtx, userID, id); err != nil {
			return err
		}
		method, err = u.paymentMethodRepo.GetByIDAndUser(txCtx, id, userID)
		return err
	})
	if err != nil {
		return nil, notFoundAs(err, MsgPaymentMethodNotFound)
	}
	return method, nil
}

// notFoundAs replaces a bare ErrNotFound with a caller-facing message.
func notFoundAs(err error, message string) error {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return err
}
