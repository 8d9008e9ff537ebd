package repositories

import (
	"context"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
)

// PaymentMethodRepository defines payment method data operations
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entities.PaymentMethod) error
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.PaymentMethod, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.PaymentMethod, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	SetDefault(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
