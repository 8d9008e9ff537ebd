package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod stores non-sensitive card metadata only.
type PaymentMethod struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Last4       string    `json:"last4"`
	Brand       string    `json:"brand"`
	ExpiryMonth int       `json:"expiryMonth"`
	ExpiryYear  int       `json:"expiryYear"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreatePaymentMethodInput represents input for storing a payment method
type CreatePaymentMethodInput struct {
	Last4       string `json:"last4" binding:"required,len=4,numeric"`
	Brand       string `json:"brand" binding:"required,min=1,max=50"`
	ExpiryMonth int    `json:"expiryMonth" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiryYear" binding:"required,min=24,max=99"`
}
