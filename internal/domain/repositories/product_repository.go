package repositories

import (
	"context"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
)

// ProductRepository defines listing data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Product, error)
	// Update and UpdateStatus never touch sold listings; a sold or missing
	// row reports domainerrors.ErrNotFound.
	Update(ctx context.Context, product *entities.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error
	// MarkSold flips an available listing to sold. It returns
	// domainerrors.ErrConflict when the listing is no longer available.
	MarkSold(ctx context.Context, id uuid.UUID) error
	// ListedSummary counts active/available listings and sums their prices.
	ListedSummary(ctx context.Context) (count int64, total string, err error)
}
