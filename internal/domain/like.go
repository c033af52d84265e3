package domain

import "github.com/google/uuid"

// Like represents a per-user, per-thread endorsement. The unique index
// on (thread_id, user_id) is the enforcement point for the at-most-one
// like per user invariant.
type Like struct {
	BaseModel
	ThreadID uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_thread_id;uniqueIndex:uq_likes_thread_user" json:"thread_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_user_id;uniqueIndex:uq_likes_thread_user" json:"user_id"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}
