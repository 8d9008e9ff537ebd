package repositories

import (
	"context"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
)

// TransactionRepository defines purchase ledger operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
