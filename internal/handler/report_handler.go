package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/response"
	"github.com/wealist/discussion-board/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Create files an abuse report against a thread or comment
func (h *ReportHandler) Create(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, report)
}
