package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindByTargetAndReporter(ctx context.Context, targetType domain.TargetType, targetID, reporterID uuid.UUID) (*domain.Report, error)
	FindRecent(ctx context.Context, limit int) ([]*domain.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	CountByStatus(ctx context.Context, status domain.ReportStatus) (int64, error)
}

// reportRepositoryImpl is the GORM implementation of ReportRepository
type reportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new instance of ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Create creates a new report. The unique index on
// (target_type, target_id, reporter_id) rejects duplicates the
// read-then-write check in the service might race past.
func (r *reportRepositoryImpl) Create(ctx context.Context, report *domain.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// FindByID finds a report by its ID
func (r *reportRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindByTargetAndReporter finds the report a user already filed for a target
func (r *reportRepositoryImpl) FindByTargetAndReporter(ctx context.Context, targetType domain.TargetType, targetID, reporterID uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	if err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND reporter_id = ?", targetType, targetID, reporterID).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindRecent returns the most recently created reports, newest first
func (r *reportRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*domain.Report, error) {
	var reports []*domain.Report
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus sets the report's triage status
func (r *reportRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns the number of reports with the given status
func (r *reportRepositoryImpl) CountByStatus(ctx context.Context, status domain.ReportStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
