package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockThreadRepository is a mock implementation of ThreadRepository
type MockThreadRepository struct {
	CreateFunc                func(ctx context.Context, thread *domain.Thread, tagNames []string, attachmentIDs []uuid.UUID) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
	FindByIDWithRelationsFunc func(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
	ListFunc                  func(ctx context.Context, params repository.ThreadListParams) ([]*domain.Thread, int64, error)
	UpdateFunc                func(ctx context.Context, thread *domain.Thread, tagNames []string) error
	UpdateStatusFunc          func(ctx context.Context, id uuid.UUID, status domain.ThreadStatus) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	CountFunc                 func(ctx context.Context) (int64, error)
}

func (m *MockThreadRepository) Create(ctx context.Context, thread *domain.Thread, tagNames []string, attachmentIDs []uuid.UUID) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, thread, tagNames, attachmentIDs)
	}
	return nil
}

func (m *MockThreadRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockThreadRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	if m.FindByIDWithRelationsFunc != nil {
		return m.FindByIDWithRelationsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockThreadRepository) List(ctx context.Context, params repository.ThreadListParams) ([]*domain.Thread, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *MockThreadRepository) Update(ctx context.Context, thread *domain.Thread, tagNames []string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, thread, tagNames)
	}
	return nil
}

func (m *MockThreadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ThreadStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockThreadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockThreadRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByThreadIDFunc func(ctx context.Context, threadID uuid.UUID) ([]*domain.Comment, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByThreadID(ctx context.Context, threadID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByThreadIDFunc != nil {
		return m.FindByThreadIDFunc(ctx, threadID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	FindAllFunc        func(ctx context.Context) ([]*domain.Tag, error)
	FindByNameFunc     func(ctx context.Context, name string) (*domain.Tag, error)
	FindByThreadIDFunc func(ctx context.Context, threadID uuid.UUID) ([]*domain.Tag, error)
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByThreadID(ctx context.Context, threadID uuid.UUID) ([]*domain.Tag, error) {
	if m.FindByThreadIDFunc != nil {
		return m.FindByThreadIDFunc(ctx, threadID)
	}
	return nil, nil
}

// MockLikeRepository is a mock implementation of LikeRepository
type MockLikeRepository struct {
	ToggleFunc          func(ctx context.Context, threadID, userID uuid.UUID) (bool, int, error)
	ExistsFunc          func(ctx context.Context, threadID, userID uuid.UUID) (bool, error)
	CountByThreadIDFunc func(ctx context.Context, threadID uuid.UUID) (int64, error)
}

func (m *MockLikeRepository) Toggle(ctx context.Context, threadID, userID uuid.UUID) (bool, int, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, threadID, userID)
	}
	return false, 0, nil
}

func (m *MockLikeRepository) Exists(ctx context.Context, threadID, userID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, threadID, userID)
	}
	return false, nil
}

func (m *MockLikeRepository) CountByThreadID(ctx context.Context, threadID uuid.UUID) (int64, error) {
	if m.CountByThreadIDFunc != nil {
		return m.CountByThreadIDFunc(ctx, threadID)
	}
	return 0, nil
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	CreateFunc                  func(ctx context.Context, report *domain.Report) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindByTargetAndReporterFunc func(ctx context.Context, targetType domain.TargetType, targetID, reporterID uuid.UUID) (*domain.Report, error)
	FindRecentFunc              func(ctx context.Context, limit int) ([]*domain.Report, error)
	UpdateStatusFunc            func(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	CountByStatusFunc           func(ctx context.Context, status domain.ReportStatus) (int64, error)
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	return nil
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReportRepository) FindByTargetAndReporter(ctx context.Context, targetType domain.TargetType, targetID, reporterID uuid.UUID) (*domain.Report, error) {
	if m.FindByTargetAndReporterFunc != nil {
		return m.FindByTargetAndReporterFunc(ctx, targetType, targetID, reporterID)
	}
	return nil, nil
}

func (m *MockReportRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Report, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockReportRepository) CountByStatus(ctx context.Context, status domain.ReportStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByThreadIDFunc  func(ctx context.Context, threadID uuid.UUID) ([]*domain.Attachment, error)
	FindExpiredTempFunc func(ctx context.Context) ([]*domain.Attachment, error)
	DeleteBatchFunc     func(ctx context.Context, ids []uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByThreadID(ctx context.Context, threadID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByThreadIDFunc != nil {
		return m.FindByThreadIDFunc(ctx, threadID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindExpiredTemp(ctx context.Context) ([]*domain.Attachment, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, entry *domain.AuditLog) error
	ListFunc   func(ctx context.Context, page, pageSize int) ([]*domain.AuditLog, int64, error)
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockAuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*domain.AuditLog, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}
