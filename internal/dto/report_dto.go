package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// CreateReportRequest represents the request to report a thread or comment
type CreateReportRequest struct {
	TargetType domain.TargetType `json:"targetType" binding:"required,oneof=thread comment"`
	TargetID   uuid.UUID         `json:"targetId" binding:"required"`
	Reason     string            `json:"reason" binding:"required"`
}

// UpdateReportStatusRequest represents a report triage status change
type UpdateReportStatusRequest struct {
	Status domain.ReportStatus `json:"status" binding:"required"`
}

// ReportResponse represents a report in API responses
type ReportResponse struct {
	ReportID     uuid.UUID           `json:"reportId"`
	TargetType   domain.TargetType   `json:"targetType"`
	TargetID     uuid.UUID           `json:"targetId"`
	Reason       string              `json:"reason"`
	ReporterID   uuid.UUID           `json:"reporterId"`
	ReporterName string              `json:"reporterName,omitempty"`
	Status       domain.ReportStatus `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// NewReportResponse converts a domain Report to its response form
func NewReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ReportID:     r.ID,
		TargetType:   r.TargetType,
		TargetID:     r.TargetID,
		Reason:       r.Reason,
		ReporterID:   r.ReporterID,
		ReporterName: r.Reporter.Name,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}
