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

// ReportUsecase handles listing reports and their moderation
type ReportUsecase struct {
	reportRepo  repositories.ReportRepository
	productRepo repositories.ProductRepository
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(reportRepo repositories.ReportRepository, productRepo repositories.ProductRepository) *ReportUsecase {
	return &ReportUsecase{reportRepo: reportRepo, productRepo: productRepo}
}

// Create flags a listing for moderators.
func (u *ReportUsecase) Create(ctx context.Context, reporterID uuid.UUID, input *entities.CreateReportInput) (*entities.Report, error) {
	reason := strings.TrimSpace(input.Reason)
	if len(reason) < 5 {
		return nil, domainerrors.BadRequest("Reason must be at least 5 characters")
	}
	productID, err := parseID(input.ProductID, MsgProductNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, notFoundAs(err, MsgProductNotFound)
	}

	report := &entities.Report{
		ID:         newID(),
		ProductID:  productID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     entities.ReportStatusPending,
		CreatedAt:  nowUTC(),
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List returns reports newest first, optionally filtered by status.
func (u *ReportUsecase) List(ctx context.Context, rawStatus string) ([]*entities.Report, error) {
	rawStatus = strings.TrimSpace(rawStatus)
	if rawStatus == "" {
		return u.reportRepo.List(ctx, nil)
	}
	status := entities.ReportStatus(rawStatus)
	if !status.Valid() {
		return nil, domainerrors.BadRequest("Invalid status")
	}
	return u.reportRepo.List(ctx, &status)
}

// UpdateStatus moves a report through moderation.
func (u *ReportUsecase) UpdateStatus(ctx context.Context, rawID, rawStatus string) (*entities.Report, error) {
	status := entities.ReportStatus(strings.TrimSpace(rawStatus))
	if !status.Valid() {
		return nil, domainerrors.BadRequest("Invalid status")
	}
	id, err := parseID(rawID, MsgReportNotFound)
	if err != nil {
		return nil, err
	}
	if err := u.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFoundAs(err, MsgReportNotFound)
	}
	report, err := u.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgReportNotFound)
		}
		return nil, err
	}
	return report, nil
}
