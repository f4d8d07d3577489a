package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrRequestNotFound    = errors.New("meeting request not found")
	ErrRoadmapNotFound    = errors.New("roadmap not found")
	ErrStepNotFound       = errors.New("roadmap step not found")
	ErrNoChallenge        = errors.New("no active challenge")
)
