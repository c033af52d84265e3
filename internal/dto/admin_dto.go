package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// AdminStats holds the aggregate counts shown on the admin panel
type AdminStats struct {
	TotalThreads     int64 `json:"totalThreads"`
	TotalComments    int64 `json:"totalComments"`
	TotalUsers       int64 `json:"totalUsers"`
	UnhandledReports int64 `json:"unhandledReports"`
}

// AdminSummaryResponse is the admin panel payload: aggregate counts
// plus the most recent reports for triage.
type AdminSummaryResponse struct {
	Stats         AdminStats       `json:"stats"`
	RecentReports []ReportResponse `json:"recentReports"`
}

// AuditLogEntryResponse represents one audit log entry
type AuditLogEntryResponse struct {
	EntryID    uuid.UUID         `json:"entryId"`
	ActorID    uuid.UUID         `json:"actorId"`
	Action     string            `json:"action"`
	TargetType domain.TargetType `json:"targetType,omitempty"`
	TargetID   *uuid.UUID        `json:"targetId,omitempty"`
	Details    string            `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// AuditLogListResponse is a paginated audit log listing
type AuditLogListResponse struct {
	Entries  []AuditLogEntryResponse `json:"entries"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
}

// NewAuditLogEntryResponse converts a domain AuditLog to its response form
func NewAuditLogEntryResponse(e *domain.AuditLog) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		EntryID:    e.ID,
		ActorID:    e.ActorID,
		Action:     e.Action,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		Details:    string(e.Details),
		CreatedAt:  e.CreatedAt,
	}
}
