package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/metrics"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// ReportService defines the interface for abuse report business logic
type ReportService interface {
	Create(ctx context.Context, reporterID uuid.UUID, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
}

// reportServiceImpl is the implementation of ReportService
type reportServiceImpl struct {
	reportRepo  repository.ReportRepository
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	audit       AuditService
	metrics     *metrics.Metrics
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	reportRepo repository.ReportRepository,
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	audit AuditService,
	m *metrics.Metrics,
) ReportService {
	return &reportServiceImpl{
		reportRepo:  reportRepo,
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		audit:       audit,
		metrics:     m,
	}
}

// Create files an abuse report against a thread or comment. A reporter
// may report a given target only once.
func (s *reportServiceImpl) Create(ctx context.Context, reporterID uuid.UUID, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if !req.TargetType.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown report target type", string(req.TargetType))
	}

	if err := s.verifyTargetExists(ctx, req.TargetType, req.TargetID); err != nil {
		return nil, err
	}

	existing, err := s.reportRepo.FindByTargetAndReporter(ctx, req.TargetType, req.TargetID, reporterID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing report", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "You have already reported this content", "")
	}

	report := &domain.Report{
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Status:     domain.ReportStatusUnhandled,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create report", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementReportCreated()
	}
	s.audit.Record(ctx, reporterID, domain.AuditActionReportCreate, req.TargetType, &req.TargetID, map[string]interface{}{
		"report_id": report.ID.String(),
	})

	resp := dto.NewReportResponse(report)
	return &resp, nil
}

func (s *reportServiceImpl) verifyTargetExists(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) error {
	var err error
	switch targetType {
	case domain.TargetTypeThread:
		_, err = s.threadRepo.FindByID(ctx, targetID)
	case domain.TargetTypeComment:
		_, err = s.commentRepo.FindByID(ctx, targetID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Reported content not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify report target", err.Error())
	}
	return nil
}
