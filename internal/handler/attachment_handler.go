package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealist/discussion-board/internal/response"
	"github.com/wealist/discussion-board/internal/service"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
	maxUploadSize     int64
}

func NewAttachmentHandler(attachmentService service.AttachmentService, maxUploadSize int64) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		maxUploadSize:     maxUploadSize,
	}
}

// Upload accepts a multipart file and stores it as a TEMP attachment.
// The returned attachment ID is referenced by a later thread create.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	// Cap the multipart parse before reading the body
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "A file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.Upload(
		c.Request.Context(),
		auth.UserID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// Download returns a short-lived presigned URL for an attachment
func (h *AttachmentHandler) Download(c *gin.Context) {
	if _, ok := ExtractAuthData(c); !ok {
		return
	}
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}

	url, err := h.attachmentService.DownloadURL(c.Request.Context(), attachmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, url)
}
