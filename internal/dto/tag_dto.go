package dto

import (
	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// TagResponse represents a tag in API responses
type TagResponse struct {
	TagID      uuid.UUID `json:"tagId"`
	Name       string    `json:"name"`
	IsOfficial bool      `json:"isOfficial"`
}

// NewTagResponse converts a domain Tag to its response form
func NewTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID:      t.ID,
		Name:       t.Name,
		IsOfficial: t.IsOfficial,
	}
}
