package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/metrics"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type ModerationHandler struct {
	BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(moderationService services.ModerationService, logger utils.Logger) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       NewBaseHandler(logger),
		moderationService: moderationService,
	}
}

func (h *ModerationHandler) CreateReport(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Filing report", "target_type", req.TargetType, "target_id", req.TargetID)

	report, err := h.moderationService.CreateReport(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.ReportsFiled.Inc()
	c.JSON(http.StatusCreated, report)
}

func (h *ModerationHandler) ListReports(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	reports, err := h.moderationService.ListReports(c.Request.Context(), userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}

// ResolveReport closes a report with either decision; both remove it
// from the queue.
func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ReportResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Resolving report", "report_id", c.Param("id"), "action", req.Action)

	report, err := h.moderationService.ResolveReport(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ModerationHandler) Broadcast(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Broadcasting announcement")

	if err := h.moderationService.Broadcast(c.Request.Context(), userID, &req); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "broadcast queued"})
}
