package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type RoadmapHandler struct {
	BaseHandler
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService, logger utils.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		BaseHandler:    NewBaseHandler(logger),
		roadmapService: roadmapService,
	}
}

// ListRoadmaps returns every roadmap with the caller's completion
// percentage attached.
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	roadmaps, err := h.roadmapService.ListRoadmaps(c.Request.Context(), userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roadmaps": roadmaps,
		"total":    len(roadmaps),
	})
}

func (h *RoadmapHandler) ToggleStep(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	h.LogRequest(c, "Toggling roadmap step", "roadmap_id", c.Param("id"), "step_id", c.Param("step_id"))

	user, err := h.roadmapService.ToggleStep(c.Request.Context(), userID, c.Param("id"), c.Param("step_id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
