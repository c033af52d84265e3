package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	FindAll(ctx context.Context) ([]*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	FindByThreadID(ctx context.Context, threadID uuid.UUID) ([]*domain.Tag, error)
}

// tagRepositoryImpl is the GORM implementation of TagRepository
type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

// FindAll returns all tags, official first then by name
func (r *tagRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Order("is_official DESC").
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByName finds a tag by exact name. Matching is case-sensitive.
func (r *tagRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).First(&tag, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByThreadID returns the tags linked to a thread
func (r *tagRepositoryImpl) FindByThreadID(ctx context.Context, threadID uuid.UUID) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN thread_tags ON thread_tags.tag_id = tags.id").
		Where("thread_tags.thread_id = ?", threadID).
		Order("tags.name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
