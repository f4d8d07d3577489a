package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/metrics"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type ForumHandler struct {
	BaseHandler
	forumService services.ForumService
}

func NewForumHandler(forumService services.ForumService, logger utils.Logger) *ForumHandler {
	return &ForumHandler{
		BaseHandler:  NewBaseHandler(logger),
		forumService: forumService,
	}
}

func (h *ForumHandler) CreateQuestion(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.QuestionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating question", "author_id", userID)

	question, err := h.forumService.CreateQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.QuestionsPosted.Inc()
	c.JSON(http.StatusCreated, question)
}

// ListQuestions supports ?filter=answered|unanswered|all. Featured
// questions come first regardless of filter.
func (h *ForumHandler) ListQuestions(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")

	questions, err := h.forumService.ListQuestions(c.Request.Context(), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"total":     len(questions),
	})
}

func (h *ForumHandler) GetQuestion(c *gin.Context) {
	question, err := h.forumService.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *ForumHandler) AppendAnswer(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.AnswerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Appending answer", "question_id", c.Param("id"))

	question, err := h.forumService.AppendAnswer(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.AnswersPosted.Inc()
	c.JSON(http.StatusCreated, question)
}

func (h *ForumHandler) ToggleFeatured(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	h.LogRequest(c, "Toggling featured flag", "question_id", c.Param("id"))

	question, err := h.forumService.ToggleFeatured(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *ForumHandler) UpvoteAnswer(c *gin.Context) {
	question, err := h.forumService.UpvoteAnswer(c.Request.Context(), c.Param("id"), c.Param("answer_id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *ForumHandler) ReportQuestion(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Reporting question", "question_id", c.Param("id"))

	report, err := h.forumService.ReportQuestion(c.Request.Context(), userID, c.Param("id"), body.Reason)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	metrics.ReportsFiled.Inc()
	c.JSON(http.StatusCreated, report)
}
