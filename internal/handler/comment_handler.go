package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/response"
	"github.com/wealist/discussion-board/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Add creates a comment on a thread
func (h *CommentHandler) Add(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), threadID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// Delete removes a comment
func (h *CommentHandler) Delete(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}
