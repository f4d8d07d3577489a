package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/metrics"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type CoordinationHandler struct {
	BaseHandler
	coordinationService services.CoordinationService
}

func NewCoordinationHandler(coordinationService services.CoordinationService, logger utils.Logger) *CoordinationHandler {
	return &CoordinationHandler{
		BaseHandler:         NewBaseHandler(logger),
		coordinationService: coordinationService,
	}
}

func (h *CoordinationHandler) ListProjects(c *gin.Context) {
	projects, err := h.coordinationService.ListProjects(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

func (h *CoordinationHandler) ProposeProject(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Proposing project", "author_id", userID)

	project, err := h.coordinationService.ProposeProject(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ToggleMembership joins the project if the caller is not a member,
// leaves it otherwise.
func (h *CoordinationHandler) ToggleMembership(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	h.LogRequest(c, "Toggling project membership", "project_id", c.Param("id"))

	resp, err := h.coordinationService.ToggleMembership(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.ProjectToggles.Inc()
	c.JSON(http.StatusOK, resp)
}
