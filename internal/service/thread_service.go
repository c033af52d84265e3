package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/client"
	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/metrics"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// ThreadService defines the interface for thread business logic
type ThreadService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateThreadRequest) (*dto.ThreadResponse, error)
	Get(ctx context.Context, threadID, userID uuid.UUID) (*dto.ThreadDetailResponse, error)
	List(ctx context.Context, query *dto.ThreadListQuery) (*dto.ThreadListResponse, error)
	Update(ctx context.Context, threadID, userID uuid.UUID, req *dto.UpdateThreadRequest) (*dto.ThreadResponse, error)
	UpdateStatus(ctx context.Context, threadID, userID uuid.UUID, req *dto.UpdateThreadStatusRequest) error
	Delete(ctx context.Context, threadID, userID uuid.UUID) error
}

// threadServiceImpl is the implementation of ThreadService
type threadServiceImpl struct {
	threadRepo repository.ThreadRepository
	userRepo   repository.UserRepository
	likeRepo   repository.LikeRepository
	s3Client   client.S3ClientInterface
	audit      AuditService
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewThreadService creates a new instance of ThreadService
func NewThreadService(
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	s3Client client.S3ClientInterface,
	audit AuditService,
	m *metrics.Metrics,
	logger *zap.Logger,
) ThreadService {
	return &threadServiceImpl{
		threadRepo: threadRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
		s3Client:   s3Client,
		audit:      audit,
		metrics:    m,
		logger:     logger,
	}
}

// Create creates a thread together with its tag links and confirms any
// referenced TEMP attachments, all in one transaction.
func (s *threadServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateThreadRequest) (*dto.ThreadResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title and body must not be empty", "")
	}

	thread := &domain.Thread{
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
		Status:   domain.ThreadStatusUnconfirmed,
	}

	if err := s.threadRepo.Create(ctx, thread, normalizeTagNames(req.Tags), req.AttachmentIDs); err != nil {
		if errors.Is(err, repository.ErrAttachmentConfirm) {
			return nil, response.NewAppError(response.ErrCodeValidation, "One or more attachments are missing or already attached", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create thread", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementThreadCreated()
	}
	s.audit.Record(ctx, userID, domain.AuditActionThreadCreate, domain.TargetTypeThread, &thread.ID, map[string]interface{}{
		"title": thread.Title,
	})

	created, err := s.threadRepo.FindByIDWithRelations(ctx, thread.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created thread", err.Error())
	}
	resp := dto.NewThreadResponse(created)
	return &resp, nil
}

// Get returns the full detail view of a thread, including whether the
// requesting user has liked it.
func (s *threadServiceImpl) Get(ctx context.Context, threadID, userID uuid.UUID) (*dto.ThreadDetailResponse, error) {
	thread, err := s.threadRepo.FindByIDWithRelations(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Thread not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load thread", err.Error())
	}

	liked, err := s.likeRepo.Exists(ctx, threadID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like state", err.Error())
	}

	detail := &dto.ThreadDetailResponse{
		ThreadResponse: dto.NewThreadResponse(thread),
		Liked:          liked,
		Comments:       make([]dto.CommentResponse, 0, len(thread.Comments)),
		Attachments:    make([]dto.AttachmentResponse, 0, len(thread.Attachments)),
	}
	for i := range thread.Comments {
		detail.Comments = append(detail.Comments, dto.NewCommentResponse(&thread.Comments[i]))
	}
	for i := range thread.Attachments {
		detail.Attachments = append(detail.Attachments, dto.NewAttachmentResponse(&thread.Attachments[i]))
	}
	return detail, nil
}

// List returns a filtered, sorted, paginated thread listing
func (s *threadServiceImpl) List(ctx context.Context, query *dto.ThreadListQuery) (*dto.ThreadListResponse, error) {
	if query.Status != "" && !query.Status.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown thread status", string(query.Status))
	}

	params := repository.ThreadListParams{
		Search:   query.Search,
		Status:   query.Status,
		Sort:     query.Sort,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	threads, total, err := s.threadRepo.List(ctx, params)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list threads", err.Error())
	}

	resp := &dto.ThreadListResponse{
		Threads:  make([]dto.ThreadResponse, 0, len(threads)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for _, t := range threads {
		resp.Threads = append(resp.Threads, dto.NewThreadResponse(t))
	}
	return resp, nil
}

// Update edits a thread's title, body and tag set. Only the author or
// a moderator may edit. The tag set in the request fully replaces the
// existing one.
func (s *threadServiceImpl) Update(ctx context.Context, threadID, userID uuid.UUID, req *dto.UpdateThreadRequest) (*dto.ThreadResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title and body must not be empty", "")
	}

	thread, err := s.findThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAuthorOrModerator(ctx, thread.AuthorID, userID); err != nil {
		return nil, err
	}

	thread.Title = req.Title
	thread.Body = req.Body
	if err := s.threadRepo.Update(ctx, thread, normalizeTagNames(req.Tags)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update thread", err.Error())
	}

	s.audit.Record(ctx, userID, domain.AuditActionThreadEdit, domain.TargetTypeThread, &threadID, nil)

	updated, err := s.threadRepo.FindByIDWithRelations(ctx, threadID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated thread", err.Error())
	}
	resp := dto.NewThreadResponse(updated)
	return &resp, nil
}

// UpdateStatus changes a thread's triage status. Only the author or a
// moderator may do so.
func (s *threadServiceImpl) UpdateStatus(ctx context.Context, threadID, userID uuid.UUID, req *dto.UpdateThreadStatusRequest) error {
	if !req.Status.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown thread status", string(req.Status))
	}

	thread, err := s.findThread(ctx, threadID)
	if err != nil {
		return err
	}
	if err := s.requireAuthorOrModerator(ctx, thread.AuthorID, userID); err != nil {
		return err
	}

	if err := s.threadRepo.UpdateStatus(ctx, threadID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Thread not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to update thread status", err.Error())
	}

	s.audit.Record(ctx, userID, domain.AuditActionThreadStatusUpdate, domain.TargetTypeThread, &threadID, map[string]interface{}{
		"status": string(req.Status),
	})
	return nil
}

// Delete removes a thread and all of its children. Blob deletion runs
// after the database transaction commits: losing a blob to a crash in
// between leaves garbage in the bucket, never a dangling row.
func (s *threadServiceImpl) Delete(ctx context.Context, threadID, userID uuid.UUID) error {
	thread, err := s.threadRepo.FindByIDWithRelations(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Thread not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load thread", err.Error())
	}
	if err := s.requireAuthorOrModerator(ctx, thread.AuthorID, userID); err != nil {
		return err
	}

	fileKeys := make([]string, 0, len(thread.Attachments))
	for _, att := range thread.Attachments {
		fileKeys = append(fileKeys, att.FileKey)
	}

	if err := s.threadRepo.Delete(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Thread not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete thread", err.Error())
	}

	for _, key := range fileKeys {
		if err := s.s3Client.DeleteFile(ctx, key); err != nil {
			s.logger.Warn("Failed to delete attachment blob",
				zap.String("file_key", key),
				zap.String("thread_id", threadID.String()),
				zap.Error(err),
			)
		}
	}

	s.audit.Record(ctx, userID, domain.AuditActionThreadDelete, domain.TargetTypeThread, &threadID, map[string]interface{}{
		"title": thread.Title,
	})
	return nil
}

func (s *threadServiceImpl) findThread(ctx context.Context, threadID uuid.UUID) (*domain.Thread, error) {
	thread, err := s.threadRepo.FindByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Thread not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load thread", err.Error())
	}
	return thread, nil
}

// requireAuthorOrModerator allows the resource author and any elevated
// user, and rejects everyone else with a forbidden error.
func (s *threadServiceImpl) requireAuthorOrModerator(ctx context.Context, authorID, userID uuid.UUID) error {
	if authorID == userID {
		return nil
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}
	if !user.Role.IsElevated() {
		return response.NewAppError(response.ErrCodeForbidden, "Only the author or a moderator may do this", "")
	}
	return nil
}
