package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentStatus represents the status of an attachment
type AttachmentStatus string

const (
	AttachmentStatusTemp      AttachmentStatus = "TEMP"      // Uploaded, not yet attached to a thread
	AttachmentStatusConfirmed AttachmentStatus = "CONFIRMED" // Attached to a thread
)

// Attachment represents an uploaded file. Files are uploaded ahead of
// thread creation as TEMP and confirmed inside the thread transaction,
// so a failed thread create never leaves orphaned rows. TEMP rows that
// outlive ExpiresAt are swept by the cleanup job.
type Attachment struct {
	BaseModel
	ThreadID         *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_thread_id" json:"thread_id"` // nil while TEMP
	Status           AttachmentStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_attachments_status" json:"status"`
	FileKey          string           `gorm:"type:text;not null" json:"file_key"` // blob store key, never the user-supplied name
	OriginalFilename string           `gorm:"type:varchar(200);not null" json:"original_filename"`
	ContentType      string           `gorm:"type:varchar(100);not null" json:"content_type"`
	FileSize         int64            `gorm:"not null" json:"file_size"`
	UploadedBy       uuid.UUID        `gorm:"type:uuid;not null;index:idx_attachments_uploaded_by" json:"uploaded_by"`
	ExpiresAt        *time.Time       `gorm:"type:timestamp;index:idx_attachments_expires_at" json:"expires_at"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
