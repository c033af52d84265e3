package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/response"
)

func newTestAuditService() AuditService {
	return NewAuditService(&MockAuditLogRepository{}, zap.NewNop())
}

func TestCommentService_Add(t *testing.T) {
	threadID := uuid.New()
	userID := uuid.New()

	mockThreadRepo := &MockThreadRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
			return &domain.Thread{BaseModel: domain.BaseModel{ID: id}}, nil
		},
	}
	mockCommentRepo := &MockCommentRepository{
		CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
			comment.ID = uuid.New()
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: id},
				ThreadID:  threadID,
				AuthorID:  userID,
				Body:      "looks good",
				Author:    domain.User{Name: "Tanaka"},
			}, nil
		},
	}

	svc := NewCommentService(mockCommentRepo, mockThreadRepo, &MockUserRepository{}, newTestAuditService(), nil)

	resp, err := svc.Add(context.Background(), threadID, userID, &dto.CreateCommentRequest{Body: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, "looks good", resp.Body)
	assert.Equal(t, userID, resp.AuthorID)
}

func TestCommentService_Add_ThreadNotFound(t *testing.T) {
	mockThreadRepo := &MockThreadRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewCommentService(&MockCommentRepository{}, mockThreadRepo, &MockUserRepository{}, newTestAuditService(), nil)

	_, err := svc.Add(context.Background(), uuid.New(), uuid.New(), &dto.CreateCommentRequest{Body: "hi"})
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestCommentService_Delete_ByAuthor(t *testing.T) {
	commentID := uuid.New()
	authorID := uuid.New()
	deleted := false

	mockCommentRepo := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: id},
				ThreadID:  uuid.New(),
				AuthorID:  authorID,
			}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewCommentService(mockCommentRepo, &MockThreadRepository{}, &MockUserRepository{}, newTestAuditService(), nil)

	err := svc.Delete(context.Background(), commentID, authorID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCommentService_Delete_ByModerator(t *testing.T) {
	commentID := uuid.New()
	moderatorID := uuid.New()
	deleted := false

	mockCommentRepo := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: id},
				ThreadID:  uuid.New(),
				AuthorID:  uuid.New(), // someone else
			}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	mockUserRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{
				BaseModel: domain.BaseModel{ID: id},
				Role:      domain.RoleModerator,
			}, nil
		},
	}

	svc := NewCommentService(mockCommentRepo, &MockThreadRepository{}, mockUserRepo, newTestAuditService(), nil)

	err := svc.Delete(context.Background(), commentID, moderatorID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCommentService_Delete_Forbidden(t *testing.T) {
	mockCommentRepo := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: id},
				AuthorID:  uuid.New(),
			}, nil
		},
	}
	mockUserRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{
				BaseModel: domain.BaseModel{ID: id},
				Role:      domain.RoleUser,
			}, nil
		},
	}

	svc := NewCommentService(mockCommentRepo, &MockThreadRepository{}, mockUserRepo, newTestAuditService(), nil)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
}

func TestCommentService_Add_RejectsBlankBody(t *testing.T) {
	svc := NewCommentService(&MockCommentRepository{}, &MockThreadRepository{}, &MockUserRepository{}, newTestAuditService(), nil)

	_, err := svc.Add(context.Background(), uuid.New(), uuid.New(), &dto.CreateCommentRequest{Body: "  \t "})
	require.Error(t, err)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
}
