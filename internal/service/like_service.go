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

// LikeService defines the interface for like business logic
type LikeService interface {
	Toggle(ctx context.Context, threadID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
}

// likeServiceImpl is the implementation of LikeService
type likeServiceImpl struct {
	likeRepo repository.LikeRepository
	audit    AuditService
	metrics  *metrics.Metrics
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(likeRepo repository.LikeRepository, audit AuditService, m *metrics.Metrics) LikeService {
	return &likeServiceImpl{
		likeRepo: likeRepo,
		audit:    audit,
		metrics:  m,
	}
}

// Toggle flips the caller's like on a thread. The repository runs the
// row insert/delete and the counter update in one transaction, so the
// returned count always matches the number of like rows.
func (s *likeServiceImpl) Toggle(ctx context.Context, threadID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	liked, count, err := s.likeRepo.Toggle(ctx, threadID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Thread not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to toggle like", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementLikeToggled()
	}
	s.audit.Record(ctx, userID, domain.AuditActionLikeToggle, domain.TargetTypeThread, &threadID, map[string]interface{}{
		"liked": liked,
	})

	return &dto.ToggleLikeResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}
