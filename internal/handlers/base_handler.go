package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// BaseHandler carries the logging helpers shared by all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.GetContextLogger(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.GetContextLogger(c, h.logger).Error(msg, append(args, "error", err)...)
}

// RespondError maps service errors onto HTTP statuses. Anything the
// mapping does not recognize is a 500.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrs,
		})
		return
	}

	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: authErr.Message,
		})
		return
	}

	var permErr *services.PermissionError
	if errors.As(err, &permErr) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: permErr.Error(),
		})
		return
	}

	if services.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	var extErr *services.ExternalServiceError
	if errors.As(err, &extErr) {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: "Upstream service unavailable",
			Details: extErr.Service,
		})
		return
	}

	h.LogError(c, err, "Unhandled service error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
	})
}
