package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// AttachmentResponse represents an attachment in API responses.
// FileKey stays internal; clients fetch content via the download URL.
type AttachmentResponse struct {
	AttachmentID     uuid.UUID               `json:"attachmentId"`
	OriginalFilename string                  `json:"originalFilename"`
	ContentType      string                  `json:"contentType"`
	FileSize         int64                   `json:"fileSize"`
	Status           domain.AttachmentStatus `json:"status"`
	ExpiresAt        *time.Time              `json:"expiresAt,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// DownloadURLResponse carries a presigned download link
type DownloadURLResponse struct {
	URL              string    `json:"url"`
	OriginalFilename string    `json:"originalFilename"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// NewAttachmentResponse converts a domain Attachment to its response form
func NewAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:     a.ID,
		OriginalFilename: a.OriginalFilename,
		ContentType:      a.ContentType,
		FileSize:         a.FileSize,
		Status:           a.Status,
		ExpiresAt:        a.ExpiresAt,
		CreatedAt:        a.CreatedAt,
	}
}
