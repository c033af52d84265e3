package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// CreateThreadRequest represents the request to create a new thread.
// AttachmentIDs reference previously uploaded TEMP attachments that are
// confirmed together with the thread.
type CreateThreadRequest struct {
	Title         string      `json:"title" binding:"required,max=200"`
	Body          string      `json:"body" binding:"required"`
	Tags          []string    `json:"tags,omitempty"`
	AttachmentIDs []uuid.UUID `json:"attachmentIds,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateThreadRequest represents the request to edit a thread.
// Tags fully replace the thread's existing tag set.
type UpdateThreadRequest struct {
	Title string   `json:"title" binding:"required,max=200"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags,omitempty"`
}

// UpdateThreadStatusRequest represents a triage status change
type UpdateThreadStatusRequest struct {
	Status domain.ThreadStatus `json:"status" binding:"required"`
}

// ThreadListQuery holds the list endpoint's query parameters
type ThreadListQuery struct {
	Search   string              `form:"search"`
	Status   domain.ThreadStatus `form:"status"`
	Sort     string              `form:"sort,default=newest" binding:"omitempty,oneof=newest popular"`
	Page     int                 `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int                 `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}

// ThreadResponse represents a thread in list responses
type ThreadResponse struct {
	ThreadID   uuid.UUID           `json:"threadId"`
	AuthorID   uuid.UUID           `json:"authorId"`
	AuthorName string              `json:"authorName,omitempty"`
	Title      string              `json:"title"`
	Body       string              `json:"body"`
	Status     domain.ThreadStatus `json:"status"`
	LikeCount  int                 `json:"likeCount"`
	Tags       []TagResponse       `json:"tags"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// ThreadDetailResponse adds the relations the detail view renders
type ThreadDetailResponse struct {
	ThreadResponse
	Liked       bool                 `json:"liked"`
	Comments    []CommentResponse    `json:"comments"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// ThreadListResponse is a paginated thread listing
type ThreadListResponse struct {
	Threads  []ThreadResponse `json:"threads"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// ToggleLikeResponse carries the result of a like toggle
type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// NewThreadResponse converts a domain Thread to its response form
func NewThreadResponse(t *domain.Thread) ThreadResponse {
	tags := make([]TagResponse, 0, len(t.ThreadTags))
	for _, tt := range t.ThreadTags {
		tags = append(tags, NewTagResponse(&tt.Tag))
	}
	return ThreadResponse{
		ThreadID:   t.ID,
		AuthorID:   t.AuthorID,
		AuthorName: t.Author.Name,
		Title:      t.Title,
		Body:       t.Body,
		Status:     t.Status,
		LikeCount:  t.LikeCount,
		Tags:       tags,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
