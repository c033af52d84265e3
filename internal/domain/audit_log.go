package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit actions recorded by the domain services.
const (
	AuditActionThreadCreate       = "thread.create"
	AuditActionThreadEdit         = "thread.edit"
	AuditActionThreadDelete       = "thread.delete"
	AuditActionThreadStatusUpdate = "thread.status_update"
	AuditActionCommentAdd         = "comment.add"
	AuditActionCommentDelete      = "comment.delete"
	AuditActionLikeToggle         = "like.toggle"
	AuditActionReportCreate       = "report.create"
	AuditActionReportTriage       = "report.triage"
)

// AuditLog is an append-only record of who did what. Rows are created
// by the services and never updated or deleted, so there is no
// UpdatedAt and the repository exposes no mutation beyond Create.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_logs_actor_id" json:"actor_id"`
	Action     string         `gorm:"type:varchar(100);not null;index:idx_audit_logs_action" json:"action"`
	TargetType TargetType     `gorm:"type:varchar(20)" json:"target_type"`
	TargetID   *uuid.UUID     `gorm:"type:uuid" json:"target_id"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_audit_logs_created_at" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate assigns an ID when the database does not.
func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
