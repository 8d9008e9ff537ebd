package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/domain/repositories"
	"campus-market.backend/pkg/logger"
	"campus-market.backend/pkg/metrics"
)

var observePurchase = metrics.ObservePurchase

// PurchaseUsecase turns an available listing into a completed transaction.
type PurchaseUsecase struct {
	productRepo       repositories.ProductRepository
	paymentMethodRepo repositories.PaymentMethodRepository
	transactionRepo   repositories.TransactionRepository
	uow               repositories.UnitOfWork
}

// NewPurchaseUsecase creates a new purchase usecase
func NewPurchaseUsecase(
	productRepo repositories.ProductRepository,
	paymentMethodRepo repositories.PaymentMethodRepository,
	transactionRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		productRepo:       productRepo,
		paymentMethodRepo: paymentMethodRepo,
		transactionRepo:   transactionRepo,
		uow:               uow,
	}
}

// Purchase buys a listing for buyerID. The listing row stays locked from the
// availability check until the transaction is written, so of any number of
// concurrent buyers exactly one succeeds.
func (u *PurchaseUsecase) Purchase(ctx context.Context, buyerID uuid.UUID, input *entities.PurchaseInput) (*entities.Transaction, error) {
	rawProductID := strings.TrimSpace(input.ProductID)
	rawMethodID := strings.TrimSpace(input.PaymentMethodID)
	if rawProductID == "" || rawMethodID == "" {
		return nil, domainerrors.BadRequest(MsgPurchaseFieldsRequired)
	}
	productID, err := parseID(rawProductID, MsgProductNotFound)
	if err != nil {
		observePurchase(metrics.PurchaseProductNotFound)
		return nil, err
	}

	var txn *entities.Transaction
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		product, err := u.productRepo.GetByID(u.uow.WithLock(txCtx), productID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound(MsgProductNotFound)
			}
			return err
		}
		if product.Status != entities.ProductStatusAvailable {
			return productUnavailable()
		}
		if product.UserID == buyerID {
			return domainerrors.BusinessRule(domainerrors.CodeInvalidOperation, MsgSelfPurchase, domainerrors.ErrSelfPurchase)
		}

		method, err := u.lookupPaymentMethod(txCtx, rawMethodID, buyerID)
		if err != nil {
			return err
		}

		if err := u.productRepo.MarkSold(txCtx, product.ID); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return productUnavailable()
			}
			return err
		}

		methodID := method.ID
		txn = &entities.Transaction{
			ID:              newID(),
			BuyerID:         buyerID,
			SellerID:        product.UserID,
			ProductID:       product.ID,
			Amount:          product.Price,
			Status:          entities.TransactionStatusCompleted,
			PaymentMethodID: &methodID,
			CreatedAt:       nowUTC(),
		}
		return u.transactionRepo.Create(txCtx, txn)
	})

	outcome := purchaseOutcome(err)
	observePurchase(outcome)
	if err != nil {
		if outcome == metrics.PurchaseError {
			logger.Error(ctx, "purchase failed",
				zap.String("product_id", productID.String()),
				zap.String("buyer_id", buyerID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}
	logger.Info(ctx, "purchase completed",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("product_id", productID.String()),
		zap.String("amount", txn.Amount),
	)
	return txn, nil
}

// History returns every transaction where the caller is buyer or seller.
func (u *PurchaseUsecase) History(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	return u.transactionRepo.ListByUser(ctx, userID)
}

func (u *PurchaseUsecase) lookupPaymentMethod(ctx context.Context, rawID string, buyerID uuid.UUID) (*entities.PaymentMethod, error) {
	invalid := domainerrors.BusinessRule(domainerrors.CodeInvalidOperation, MsgInvalidPaymentMethod, domainerrors.ErrInvalidPaymentMethod)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, invalid
	}
	method, err := u.paymentMethodRepo.GetByIDAndUser(ctx, id, buyerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	return method, nil
}

func productUnavailable() *domainerrors.AppError {
	return domainerrors.BusinessRule(domainerrors.CodeProductUnavailable, MsgProductUnavailable, domainerrors.ErrProductUnavailable)
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.PurchaseCompleted
	case errors.Is(err, domainerrors.ErrProductUnavailable):
		return metrics.PurchaseUnavailable
	case errors.Is(err, domainerrors.ErrSelfPurchase):
		return metrics.PurchaseSelfPurchase
	case errors.Is(err, domainerrors.ErrInvalidPaymentMethod):
		return metrics.PurchaseInvalidPayment
	case errors.Is(err, domainerrors.ErrNotFound):
		return metrics.PurchaseProductNotFound
	}
	return metrics.PurchaseError
}
