package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus tracks moderation progress.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)

// Valid reports whether s is a known status.
func (s ReportStatus) Valid() bool {
	return s == ReportStatusPending || s == ReportStatusReviewed || s == ReportStatusResolved
}

// Report flags a listing for moderator attention.
type Report struct {
	ID         uuid.UUID    `json:"id"`
	ProductID  uuid.UUID    `json:"productId"`
	ReporterID uuid.UUID    `json:"reporterId"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// CreateReportInput represents input for flagging a listing
type CreateReportInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Reason    string `json:"reason" binding:"required,min=5,max=2000"`
}

// UpdateReportStatusInput moves a report through moderation.
type UpdateReportStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed resolved"`
}

// AdminStats is the dashboard aggregate.
type AdminStats struct {
	TotalUsers     int64  `json:"totalUsers"`
	ActiveListings int64  `json:"activeListings"`
	PendingReports int64  `json:"pendingReports"`
	EstimatedValue string `json:"estimatedValue"`
}
