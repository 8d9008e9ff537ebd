package repositories

import (
	"context"

	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
)

// ReportRepository defines moderation report operations
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error)
	List(ctx context.Context, status *entities.ReportStatus) ([]*entities.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReportStatus) error
	CountByStatus(ctx context.Context, status entities.ReportStatus) (int64, error)
}
