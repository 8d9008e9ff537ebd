package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/interfaces/http/response"
)

// ReportService is the moderation queue behind ReportHandler
type ReportService interface {
	Create(ctx context.Context, reporterID uuid.UUID, input *entities.CreateReportInput) (*entities.Report, error)
	List(ctx context.Context, rawStatus string) ([]*entities.Report, error)
	UpdateStatus(ctx context.Context, rawID, rawStatus string) (*entities.Report, error)
}

// ReportHandler handles listing reports
type ReportHandler struct {
	reportService ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles POST /api/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.CreateReportInput
	if !bindJSON(c, &input) {
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"report": report})
}

// ListReports handles GET /api/admin/reports?status=
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

// UpdateReportStatus handles PATCH /api/admin/reports/:id
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var input entities.UpdateReportStatusInput
	if !bindJSON(c, &input) {
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Report status updated", "report": report})
}
