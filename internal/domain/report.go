package domain

import "github.com/google/uuid"

// TargetType represents the kind of entity a report or audit entry points at
type TargetType string

const (
	TargetTypeThread  TargetType = "thread"
	TargetTypeComment TargetType = "comment"
)

// Valid reports whether the target type is one of the known values.
func (t TargetType) Valid() bool {
	return t == TargetTypeThread || t == TargetTypeComment
}

// ReportStatus represents the triage status of a report
type ReportStatus string

const (
	ReportStatusUnhandled  ReportStatus = "unhandled"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusDone       ReportStatus = "done"
)

// Valid reports whether the status is one of the known values.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusUnhandled, ReportStatusInProgress, ReportStatusDone:
		return true
	}
	return false
}

// Report represents a moderation flag raised by a user against a
// thread or comment. A reporter may have at most one report per target,
// enforced by the unique index.
type Report struct {
	BaseModel
	TargetType TargetType   `gorm:"type:varchar(20);not null;uniqueIndex:uq_reports_target_reporter,priority:1" json:"target_type"`
	TargetID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_reports_target_reporter,priority:2" json:"target_id"`
	ReporterID uuid.UUID    `gorm:"type:uuid;not null;index:idx_reports_reporter_id;uniqueIndex:uq_reports_target_reporter,priority:3" json:"reporter_id"`
	Reason     string       `gorm:"type:text;not null" json:"reason"`
	Status     ReportStatus `gorm:"type:varchar(20);not null;default:'unhandled';index:idx_reports_status" json:"status"`

	Reporter User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
