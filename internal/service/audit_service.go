package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// AuditService records and lists audit log entries
type AuditService interface {
	// Record appends an audit entry. It never fails the calling
	// operation: write errors are logged and swallowed.
	Record(ctx context.Context, actorID uuid.UUID, action string, targetType domain.TargetType, targetID *uuid.UUID, details map[string]interface{})
	List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error)
}

// auditServiceImpl is the implementation of AuditService
type auditServiceImpl struct {
	auditRepo repository.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(auditRepo repository.AuditLogRepository, logger *zap.Logger) AuditService {
	return &auditServiceImpl{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *auditServiceImpl) Record(ctx context.Context, actorID uuid.UUID, action string, targetType domain.TargetType, targetID *uuid.UUID, details map[string]interface{}) {
	entry := &domain.AuditLog{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
	}

	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			s.logger.Warn("Failed to marshal audit details",
				zap.String("action", action),
				zap.Error(err),
			)
		} else {
			entry.Details = raw
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit log entry",
			zap.String("action", action),
			zap.String("actor_id", actorID.String()),
			zap.Error(err),
		)
	}
}

func (s *auditServiceImpl) List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := s.auditRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list audit log", err.Error())
	}

	resp := &dto.AuditLogListResponse{
		Entries:  make([]dto.AuditLogEntryResponse, 0, len(entries)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.NewAuditLogEntryResponse(e))
	}
	return resp, nil
}
