package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/interfaces/http/response"
)

// PaymentMethodService manages stored cards
type PaymentMethodService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entities.PaymentMethod, error)
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreatePaymentMethodInput) (*entities.PaymentMethod, error)
	Delete(ctx context.Context, userID uuid.UUID, rawID string) error
	SetDefault(ctx context.Context, userID uuid.UUID, rawID string) (*entities.PaymentMethod, error)
}

// PaymentMethodHandler handles payment method endpoints
type PaymentMethodHandler struct {
	paymentMethodService PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(paymentMethodService PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentMethodService: paymentMethodService}
}

// ListPaymentMethods handles GET /api/payment-methods
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	methods, err := h.paymentMethodService.List(c.Request.Context(), authCtx.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paymentMethods": methods})
}

// CreatePaymentMethod handles POST /api/payment-methods
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.CreatePaymentMethodInput
	if !bindJSON(c, &input) {
		return
	}

	method, err := h.paymentMethodService.Create(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"paymentMethod": method})
}

// DeletePaymentMethod handles DELETE /api/payment-methods/:id
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	if err := h.paymentMethodService.Delete(c.Request.Context(), authCtx.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Payment method deleted"})
}

// SetDefaultPaymentMethod handles PUT /api/payment-methods/:id/default
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	method, err := h.paymentMethodService.SetDefault(c.Request.Context(), authCtx.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paymentMethod": method})
}
