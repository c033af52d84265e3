package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// ErrAttachmentConfirm is returned when a thread references attachment
// IDs that do not exist as TEMP rows, aborting the whole transaction.
var ErrAttachmentConfirm = errors.New("attachment confirmation mismatch")

// Thread list sort keys
const (
	SortNewest  = "newest"
	SortPopular = "popular"
)

// ThreadListParams holds filtering, sorting and pagination for List
type ThreadListParams struct {
	Search   string
	Status   domain.ThreadStatus
	Sort     string
	Page     int
	PageSize int
}

// ThreadRepository defines the interface for thread data access.
// Multi-entity operations (create with tags/attachments, edit, delete)
// run inside a single transaction so no partial state is ever visible.
type ThreadRepository interface {
	Create(ctx context.Context, thread *domain.Thread, tagNames []string, attachmentIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
	List(ctx context.Context, params ThreadListParams) ([]*domain.Thread, int64, error)
	Update(ctx context.Context, thread *domain.Thread, tagNames []string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ThreadStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// threadRepositoryImpl is the GORM implementation of ThreadRepository
type threadRepositoryImpl struct {
	db *gorm.DB
}

// NewThreadRepository creates a new instance of ThreadRepository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepositoryImpl{db: db}
}

// Create creates a thread together with its tag links and confirms any
// pre-uploaded attachments, all in one transaction.
func (r *threadRepositoryImpl) Create(ctx context.Context, thread *domain.Thread, tagNames []string, attachmentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}
		if err := linkTags(tx, thread.ID, tagNames); err != nil {
			return err
		}
		return confirmAttachments(tx, attachmentIDs, thread.ID)
	})
}

// FindByID finds a thread by its ID
func (r *threadRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	var thread domain.Thread
	if err := r.db.WithContext(ctx).First(&thread, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

// FindByIDWithRelations finds a thread with author, comments, tags and
// attachments preloaded for the detail view.
func (r *threadRepositoryImpl) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	var thread domain.Thread
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("ThreadTags.Tag").
		Preload("Attachments", "status = ?", domain.AttachmentStatusConfirmed).
		First(&thread, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

// List returns a page of threads and the total match count
func (r *threadRepositoryImpl) List(ctx context.Context, params ThreadListParams) ([]*domain.Thread, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Thread{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR body LIKE ?", pattern, pattern)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch params.Sort {
	case SortPopular:
		query = query.Order("like_count DESC").Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var threads []*domain.Thread
	if err := query.
		Preload("Author").
		Preload("ThreadTags.Tag").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&threads).Error; err != nil {
		return nil, 0, err
	}
	return threads, total, nil
}

// Update replaces the thread's title/body and recreates its tag links
// from tagNames, in one transaction.
func (r *threadRepositoryImpl) Update(ctx context.Context, thread *domain.Thread, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(thread).Updates(map[string]interface{}{
			"title": thread.Title,
			"body":  thread.Body,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", thread.ID).Delete(&domain.ThreadTag{}).Error; err != nil {
			return err
		}
		return linkTags(tx, thread.ID, tagNames)
	})
}

// UpdateStatus sets the thread's triage status
func (r *threadRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ThreadStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Thread{}).
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

// Delete removes the thread and all dependent rows. Children are
// deleted explicitly so the cascade holds on stores without foreign
// key enforcement; the FK constraints remain as a backstop.
func (r *threadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", id).Delete(&domain.ThreadTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", id).Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Thread{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the total number of threads
func (r *threadRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Thread{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// linkTags finds or creates each named tag and links it to the thread.
// FirstOrCreate on the link row makes a repeated tag name a no-op.
func linkTags(tx *gorm.DB, threadID uuid.UUID, tagNames []string) error {
	for _, name := range tagNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var tag domain.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, domain.Tag{Name: name}).Error; err != nil {
			return err
		}

		var link domain.ThreadTag
		if err := tx.Where("thread_id = ? AND tag_id = ?", threadID, tag.ID).
			FirstOrCreate(&link, domain.ThreadTag{ThreadID: threadID, TagID: tag.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// confirmAttachments moves TEMP attachments onto the thread. Count
// verification catches IDs that are missing or already confirmed.
func confirmAttachments(tx *gorm.DB, attachmentIDs []uuid.UUID, threadID uuid.UUID) error {
	if len(attachmentIDs) == 0 {
		return nil
	}

	result := tx.Model(&domain.Attachment{}).
		Where("id IN ? AND status = ?", attachmentIDs, domain.AttachmentStatusTemp).
		Updates(map[string]interface{}{
			"thread_id":  threadID,
			"status":     domain.AttachmentStatusConfirmed,
			"expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(attachmentIDs)) {
		return fmt.Errorf("%w: expected %d, confirmed %d",
			ErrAttachmentConfirm, len(attachmentIDs), result.RowsAffected)
	}
	return nil
}
