package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// LikeRepository defines the interface for like data access
type LikeRepository interface {
	// Toggle flips the like state for (threadID, userID) and returns
	// the resulting state and the thread's updated like count.
	Toggle(ctx context.Context, threadID, userID uuid.UUID) (liked bool, count int, err error)
	Exists(ctx context.Context, threadID, userID uuid.UUID) (bool, error)
	CountByThreadID(ctx context.Context, threadID uuid.UUID) (int64, error)
}

// likeRepositoryImpl is the GORM implementation of LikeRepository
type likeRepositoryImpl struct {
	db *gorm.DB
}

// NewLikeRepository creates a new instance of LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepositoryImpl{db: db}
}

// Toggle runs the read-then-write sequence in one transaction so the
// counter can never drift from the number of like rows. The unique
// index on (thread_id, user_id) backstops concurrent toggles.
func (r *likeRepositoryImpl) Toggle(ctx context.Context, threadID, userID uuid.UUID) (bool, int, error) {
	var liked bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var thread domain.Thread
		if err := tx.First(&thread, "id = ?", threadID).Error; err != nil {
			return err
		}

		var existing domain.Like
		err := tx.Where("thread_id = ? AND user_id = ?", threadID, userID).First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&thread).
				Update("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			liked = false
			count = thread.LikeCount - 1

		case errors.Is(err, gorm.ErrRecordNotFound):
			like := domain.Like{ThreadID: threadID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&thread).
				Update("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
			count = thread.LikeCount + 1

		default:
			return err
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// Exists reports whether a like exists for (threadID, userID)
func (r *likeRepositoryImpl) Exists(ctx context.Context, threadID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("thread_id = ? AND user_id = ?", threadID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByThreadID returns the number of like rows for a thread
func (r *likeRepositoryImpl) CountByThreadID(ctx context.Context, threadID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("thread_id = ?", threadID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
