package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/response"
	"github.com/wealist/discussion-board/internal/service"
)

type AdminHandler struct {
	adminService service.AdminService
	auditService service.AuditService
}

func NewAdminHandler(adminService service.AdminService, auditService service.AuditService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		auditService: auditService,
	}
}

// Summary returns the moderator panel payload
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.adminService.Summary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}

// UpdateReportStatus advances a report through triage
func (h *AdminHandler) UpdateReportStatus(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "reportId")
	if !ok {
		return
	}

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	report, err := h.adminService.UpdateReportStatus(c.Request.Context(), auth.UserID, reportID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, report)
}

// AuditLogs returns a paginated audit log listing
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	entries, err := h.auditService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entries)
}
