package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/interfaces/http/response"
	"campus-market.backend/internal/usecases"
)

// PurchaseService is the checkout logic behind TransactionHandler
type PurchaseService interface {
	Purchase(ctx context.Context, buyerID uuid.UUID, input *entities.PurchaseInput) (*entities.Transaction, error)
	History(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
}

// TransactionHandler handles purchase endpoints
type TransactionHandler struct {
	purchaseService PurchaseService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(purchaseService PurchaseService) *TransactionHandler {
	return &TransactionHandler{purchaseService: purchaseService}
}

// ListTransactions returns purchases and sales of the caller
// GET /api/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	transactions, err := h.purchaseService.History(c.Request.Context(), authCtx.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": transactions})
}

// Purchase buys a listing
// POST /api/transactions
func (h *TransactionHandler) Purchase(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(usecases.MsgPurchaseFieldsRequired))
		return
	}

	transaction, err := h.purchaseService.Purchase(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"transaction": transaction})
}
