package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/response"
	"github.com/wealist/discussion-board/internal/service"
)

type ThreadHandler struct {
	threadService service.ThreadService
	likeService   service.LikeService
}

func NewThreadHandler(threadService service.ThreadService, likeService service.LikeService) *ThreadHandler {
	return &ThreadHandler{
		threadService: threadService,
		likeService:   likeService,
	}
}

// Create creates a new thread
func (h *ThreadHandler) Create(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	thread, err := h.threadService.Create(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, thread)
}

// Get returns a thread's detail view
func (h *ThreadHandler) Get(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	thread, err := h.threadService.Get(c.Request.Context(), threadID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, thread)
}

// List returns a filtered, paginated thread listing
func (h *ThreadHandler) List(c *gin.Context) {
	var query dto.ThreadListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	threads, err := h.threadService.List(c.Request.Context(), &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, threads)
}

// Update edits a thread's title, body and tags
func (h *ThreadHandler) Update(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	var req dto.UpdateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	thread, err := h.threadService.Update(c.Request.Context(), threadID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, thread)
}

// UpdateStatus changes a thread's triage status
func (h *ThreadHandler) UpdateStatus(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	var req dto.UpdateThreadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.threadService.UpdateStatus(c.Request.Context(), threadID, auth.UserID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"status": req.Status})
}

// Delete removes a thread and everything attached to it
func (h *ThreadHandler) Delete(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	if err := h.threadService.Delete(c.Request.Context(), threadID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Thread deleted"})
}

// ToggleLike flips the caller's like on a thread
func (h *ThreadHandler) ToggleLike(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	threadID, ok := parseUUIDParam(c, "threadId")
	if !ok {
		return
	}

	result, err := h.likeService.Toggle(c.Request.Context(), threadID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
