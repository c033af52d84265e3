package domain

import "github.com/google/uuid"

// ThreadStatus represents the triage status of a thread
type ThreadStatus string

const (
	ThreadStatusUnconfirmed ThreadStatus = "unconfirmed"
	ThreadStatusUnderReview ThreadStatus = "under_review"
	ThreadStatusInProgress  ThreadStatus = "in_progress"
	ThreadStatusDone        ThreadStatus = "done"
)

// Valid reports whether the status is one of the known values.
func (s ThreadStatus) Valid() bool {
	switch s {
	case ThreadStatusUnconfirmed, ThreadStatusUnderReview, ThreadStatusInProgress, ThreadStatusDone:
		return true
	}
	return false
}

// Thread represents a top-level discussion post.
// LikeCount is maintained inside the like-toggle transaction and must
// always equal the number of Like rows for the thread.
type Thread struct {
	BaseModel
	AuthorID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_threads_author_id" json:"author_id"`
	Title     string       `gorm:"type:varchar(200);not null" json:"title"`
	Body      string       `gorm:"type:text;not null" json:"body"`
	Status    ThreadStatus `gorm:"type:varchar(20);not null;default:'unconfirmed';index:idx_threads_status" json:"status"`
	LikeCount int          `gorm:"not null;default:0;index:idx_threads_like_count" json:"like_count"`

	Author      User         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	ThreadTags  []ThreadTag  `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"thread_tags,omitempty"`
	Likes       []Like       `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// TableName specifies the table name for Thread
func (Thread) TableName() string {
	return "threads"
}
