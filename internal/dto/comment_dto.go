package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// CreateCommentRequest represents the request to add a comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	CommentID  uuid.UUID `json:"commentId"`
	ThreadID   uuid.UUID `json:"threadId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCommentResponse converts a domain Comment to its response form
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:  c.ID,
		ThreadID:   c.ThreadID,
		AuthorID:   c.AuthorID,
		AuthorName: c.Author.Name,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}
