package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/infrastructure/models"
)

// ReportRepository implements moderation report operations
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a report
func (r *ReportRepository) Create(ctx context.Context, report *entities.Report) error {
	m := &models.Report{
		ID:         report.ID,
		ProductID:  report.ProductID,
		ReporterID: report.ReporterID,
		Reason:     report.Reason,
		Status:     string(report.Status),
		CreatedAt:  report.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	var m models.Report
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toReportEntity(&m), nil
}

// List returns reports, newest first, optionally filtered by status
func (r *ReportRepository) List(ctx context.Context, status *entities.ReportStatus) ([]*entities.Report, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Report{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var reportModels []models.Report
	if err := query.Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*entities.Report, 0, len(reportModels))
	for i := range reportModels {
		reports = append(reports, toReportEntity(&reportModels[i]))
	}
	return reports, nil
}

// UpdateStatus sets the moderation status of a report
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReportStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Report{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts reports in one status
func (r *ReportRepository) CountByStatus(ctx context.Context, status entities.ReportStatus) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Report{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toReportEntity(m *models.Report) *entities.Report {
	return &entities.Report{
		ID:         m.ID,
		ProductID:  m.ProductID,
		ReporterID: m.ReporterID,
		Reason:     m.Reason,
		Status:     entities.ReportStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}
