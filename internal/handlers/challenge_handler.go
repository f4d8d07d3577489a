package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type ChallengeHandler struct {
	BaseHandler
	challengeService services.ChallengeService
}

func NewChallengeHandler(challengeService services.ChallengeService, logger utils.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		BaseHandler:      NewBaseHandler(logger),
		challengeService: challengeService,
	}
}

func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	challenge, err := h.challengeService.GetChallenge(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// RequestJoin files a meeting request for the current challenge. A
// repeat request replaces the previous one and resets it to pending.
func (h *ChallengeHandler) RequestJoin(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	h.LogRequest(c, "Challenge join requested", "user_id", userID)

	challenge, err := h.challengeService.RequestJoin(c.Request.Context(), userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func (h *ChallengeHandler) DecideRequest(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req services.MeetingDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Deciding join request", "target_user_id", req.UserID, "action", req.Action)

	challenge, err := h.challengeService.DecideRequest(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}
