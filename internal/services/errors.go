package services

import (
	"errors"
	"fmt"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
)

// Store sentinels re-exported so handlers depend on one package for
// error mapping.
var (
	ErrInvalidCredentials = store.ErrInvalidCredentials
	ErrEmailTaken         = store.ErrEmailTaken
	ErrUserNotFound       = store.ErrUserNotFound
	ErrQuestionNotFound   = store.ErrQuestionNotFound
	ErrCourseNotFound     = store.ErrCourseNotFound
	ErrResourceNotFound   = store.ErrResourceNotFound
	ErrProjectNotFound    = store.ErrProjectNotFound
	ErrReportNotFound     = store.ErrReportNotFound
	ErrRequestNotFound    = store.ErrRequestNotFound
	ErrRoadmapNotFound    = store.ErrRoadmapNotFound
	ErrStepNotFound       = store.ErrStepNotFound
	ErrNoChallenge        = store.ErrNoChallenge
)

// AuthError covers bad credentials and registration conflicts. It is
// rendered at the form boundary, never thrown to a global handler.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("auth error: %s", e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

func NewAuthError(message string, err error) *AuthError {
	return &AuthError{Message: message, Err: err}
}

// PermissionError means a capability predicate was false for the
// acting user. The UI renders the action as unavailable; reaching the
// store with one of these is a bug.
type PermissionError struct {
	Action string
	Role   models.UserRole
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: role %q may not %s", e.Role, e.Action)
}

func NewPermissionError(action string, role models.UserRole) *PermissionError {
	return &PermissionError{Action: action, Role: role}
}

// ExternalServiceError wraps a failed call to the generative-language
// boundary. Callers substitute a static fallback message so the chat
// surface never shows a raw failure.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func NewExternalServiceError(service string, err error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Err: err}
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrUserNotFound, ErrQuestionNotFound, ErrCourseNotFound,
		ErrResourceNotFound, ErrProjectNotFound, ErrReportNotFound,
		ErrRequestNotFound, ErrRoadmapNotFound, ErrStepNotFound,
		ErrNoChallenge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
