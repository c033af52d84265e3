package domain

import "github.com/google/uuid"

// Comment represents a reply attached to exactly one thread
type Comment struct {
	BaseModel
	ThreadID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_thread_id" json:"thread_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"author_id"`
	Body     string    `gorm:"type:text;not null" json:"body"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
