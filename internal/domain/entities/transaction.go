package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the ledger state of a purchase.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction records a purchase. Amount is copied from the listing price at
// purchase time and never follows later price edits.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	BuyerID         uuid.UUID         `json:"buyerId"`
	SellerID        uuid.UUID         `json:"sellerId"`
	ProductID       uuid.UUID         `json:"productId"`
	Amount          string            `json:"amount"`
	Status          TransactionStatus `json:"status"`
	PaymentMethodID *uuid.UUID        `json:"paymentMethodId"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// PurchaseInput represents a purchase request
type PurchaseInput struct {
	ProductID       string `json:"productId"`
	PaymentMethodID string `json:"paymentMethodId"`
}
