package domain

import "github.com/google/uuid"

// Tag represents a named label applicable to multiple threads.
// Tags are created lazily on first use; name matching is case-sensitive.
type Tag struct {
	BaseModel
	Name       string `gorm:"type:varchar(50);uniqueIndex:uq_tags_name;not null" json:"name"`
	IsOfficial bool   `gorm:"not null;default:false" json:"is_official"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// ThreadTag links a thread to a tag. The unique index makes a repeated
// tag submission for the same thread a no-op instead of a second row.
type ThreadTag struct {
	BaseModel
	ThreadID uuid.UUID `gorm:"type:uuid;not null;index:idx_thread_tags_thread_id;uniqueIndex:uq_thread_tags_thread_tag" json:"thread_id"`
	TagID    uuid.UUID `gorm:"type:uuid;not null;index:idx_thread_tags_tag_id;uniqueIndex:uq_thread_tags_thread_tag" json:"tag_id"`

	Tag Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

// TableName specifies the table name for ThreadTag
func (ThreadTag) TableName() string {
	return "thread_tags"
}
