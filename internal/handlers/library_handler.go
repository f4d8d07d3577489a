package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/metrics"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type LibraryHandler struct {
	BaseHandler
	libraryService services.LibraryService
}

func NewLibraryHandler(libraryService services.LibraryService, logger utils.Logger) *LibraryHandler {
	return &LibraryHandler{
		BaseHandler:    NewBaseHandler(logger),
		libraryService: libraryService,
	}
}

func (h *LibraryHandler) ListCourses(c *gin.Context) {
	courses, err := h.libraryService.ListCourses(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

func (h *LibraryHandler) GetCourse(c *gin.Context) {
	course, err := h.libraryService.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// AddResource submits a resource to a course. Faculty submissions go
// live immediately; everything else enters the review queue.
func (h *LibraryHandler) AddResource(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ResourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Adding resource", "course_id", req.CourseID)

	resource, err := h.libraryService.AddResource(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resource)
}

func (h *LibraryHandler) ReviewResource(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ResourceReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Reviewing resource", "resource_id", c.Param("id"), "approve", req.Approve)

	resource, err := h.libraryService.ReviewResource(c.Request.Context(), userID, c.Param("id"), req.Approve)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.ResourceReviews.Inc()
	c.JSON(http.StatusOK, resource)
}

func (h *LibraryHandler) ListResources(c *gin.Context) {
	resources, err := h.libraryService.ListResources(c.Request.Context(), c.Query("origin"), c.Query("status"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"total":     len(resources),
	})
}

func (h *LibraryHandler) ListPendingResources(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	resources, err := h.libraryService.ListPendingResources(c.Request.Context(), userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"total":     len(resources),
	})
}
