package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/metrics"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	Add(ctx context.Context, threadID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	threadRepo  repository.ThreadRepository
	userRepo    repository.UserRepository
	audit       AuditService
	metrics     *metrics.Metrics
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
	audit AuditService,
	m *metrics.Metrics,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		userRepo:    userRepo,
		audit:       audit,
		metrics:     m,
	}
}

// Add creates a comment on an existing thread
func (s *commentServiceImpl) Add(ctx context.Context, threadID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment body must not be empty", "")
	}

	if _, err := s.threadRepo.FindByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Thread not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify thread", err.Error())
	}

	comment := &domain.Comment{
		ThreadID: threadID,
		AuthorID: userID,
		Body:     req.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.audit.Record(ctx, userID, domain.AuditActionCommentAdd, domain.TargetTypeComment, &comment.ID, map[string]interface{}{
		"thread_id": threadID.String(),
	})

	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created comment", err.Error())
	}
	resp := dto.NewCommentResponse(created)
	return &resp, nil
}

// Delete removes a comment. Only the comment author or a moderator
// may delete.
func (s *commentServiceImpl) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	if comment.AuthorID != userID {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
		}
		if !user.Role.IsElevated() {
			return response.NewAppError(response.ErrCodeForbidden, "Only the author or a moderator may delete this comment", "")
		}
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.audit.Record(ctx, userID, domain.AuditActionCommentDelete, domain.TargetTypeComment, &commentID, map[string]interface{}{
		"thread_id": comment.ThreadID.String(),
	})
	return nil
}
