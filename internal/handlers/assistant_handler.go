package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/metrics"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type AssistantHandler struct {
	BaseHandler
	assistantService services.AssistantService
}

func NewAssistantHandler(assistantService services.AssistantService, logger utils.Logger) *AssistantHandler {
	return &AssistantHandler{
		BaseHandler:      NewBaseHandler(logger),
		assistantService: assistantService,
	}
}

// Chat relays a message to the assistant. Report-flavored messages are
// intercepted and filed as moderation reports instead.
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Assistant chat", "user_id", userID, "use_search", req.UseSearch)
	metrics.AssistantCalls.Inc()

	resp, err := h.assistantService.Chat(c.Request.Context(), userID, &req)
	if err != nil {
		// A failed model call still returns the fallback text so the
		// chat surface never renders empty.
		if resp != nil {
			c.JSON(http.StatusBadGateway, resp)
			return
		}
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) RecommendLearningPath(c *gin.Context) {
	var req services.LearningPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Generating learning path", "goal", req.Goal)

	path, err := h.assistantService.RecommendLearningPath(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, path)
}
