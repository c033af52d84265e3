package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// AuditLogRepository defines the interface for audit log data access.
// The log is append-only: there is deliberately no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, page, pageSize int) ([]*domain.AuditLog, int64, error)
}

// auditLogRepositoryImpl is the GORM implementation of AuditLogRepository
type auditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new instance of AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

// Create appends an audit entry
func (r *auditLogRepositoryImpl) Create(ctx context.Context, entry *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns a page of audit entries, newest first
func (r *auditLogRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*domain.AuditLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	var entries []*domain.AuditLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
