package services

import (
	"context"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request DTOs live in the validator package next to their rules;
// aliases keep service signatures local.
type (
	RegisterRequest        = validator.RegisterRequest
	LoginRequest           = validator.LoginRequest
	UpdateProfileRequest   = validator.UpdateProfileRequest
	UpdateRoleRequest      = validator.UpdateRoleRequest
	QuestionCreateRequest  = validator.QuestionCreateRequest
	AnswerCreateRequest    = validator.AnswerCreateRequest
	ResourceCreateRequest  = validator.ResourceCreateRequest
	ResourceReviewRequest  = validator.ResourceReviewRequest
	ProjectCreateRequest   = validator.ProjectCreateRequest
	ReportCreateRequest    = validator.ReportCreateRequest
	ReportResolveRequest   = validator.ReportResolveRequest
	MeetingDecisionRequest = validator.MeetingDecisionRequest
	BroadcastRequest       = validator.BroadcastRequest
	ChatRequest            = validator.ChatRequest
	ChatTurn               = validator.ChatTurn
	LearningPathRequest    = validator.LearningPathRequest
)

// AuthResponse is returned by Login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RoleChangeResponse is the explicit outcome of UpdateRole. When
// SessionInvalidated is set the target's active session must
// re-authenticate; its cached privilege claims are stale.
type RoleChangeResponse struct {
	User               *models.User    `json:"user"`
	OldRole            models.UserRole `json:"old_role"`
	SessionInvalidated bool            `json:"session_invalidated"`
}

// SourceRef is a citation returned alongside a grounded chat answer.
type SourceRef struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatResponse is one assistant reply. When the user's message was
// intercepted as a report, ReportFiled is set and Text carries the
// canned acknowledgement.
type ChatResponse struct {
	Text        string      `json:"text"`
	Sources     []SourceRef `json:"sources,omitempty"`
	ReportFiled bool        `json:"report_filed"`
}

// LearningPathStep is one ordered step of a recommended path.
type LearningPathStep struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// LearningPath is the schema-validated structured recommendation.
// Content is opaque model output with no determinism guarantee.
type LearningPath struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Steps       []LearningPathStep `json:"steps"`
}

// RoadmapView is a roadmap plus the requesting user's progress.
type RoadmapView struct {
	*models.Roadmap
	CompletionPercent int `json:"completion_percent"`
}

// MembershipResponse is the outcome of a project join/leave toggle.
type MembershipResponse struct {
	Project *models.ProjectIdea `json:"project"`
	User    *models.User        `json:"user"`
	Joined  bool                `json:"joined"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error)
	UpdateRole(ctx context.Context, actingID, targetID string, req *UpdateRoleRequest) (*RoleChangeResponse, error)
}

type ForumService interface {
	CreateQuestion(ctx context.Context, authorID string, req *QuestionCreateRequest) (*models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	ListQuestions(ctx context.Context, filter string) ([]*models.Question, error)
	AppendAnswer(ctx context.Context, actorID, questionID string, req *AnswerCreateRequest) (*models.Question, error)
	ToggleFeatured(ctx context.Context, actorID, questionID string) (*models.Question, error)
	UpvoteAnswer(ctx context.Context, questionID, answerID string) (*models.Question, error)
	ReportQuestion(ctx context.Context, reporterID, questionID, reason string) (*models.Report, error)
}

type LibraryService interface {
	ListCourses(ctx context.Context, query string) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	AddResource(ctx context.Context, actorID string, req *ResourceCreateRequest) (*models.CourseResource, error)
	ReviewResource(ctx context.Context, actorID, resourceID string, approve bool) (*models.CourseResource, error)
	ListResources(ctx context.Context, origin, status string) ([]*models.CourseResource, error)
	ListPendingResources(ctx context.Context, actorID string) ([]*models.CourseResource, error)
}

type CoordinationService interface {
	ProposeProject(ctx context.Context, actorID string, req *ProjectCreateRequest) (*models.ProjectIdea, error)
	ToggleMembership(ctx context.Context, actorID, projectID string) (*MembershipResponse, error)
	ListProjects(ctx context.Context) ([]*models.ProjectIdea, error)
}

type ChallengeService interface {
	GetChallenge(ctx context.Context) (*models.WeeklyChallenge, error)
	RequestJoin(ctx context.Context, actorID string) (*models.WeeklyChallenge, error)
	DecideRequest(ctx context.Context, actorID string, req *MeetingDecisionRequest) (*models.WeeklyChallenge, error)
}

type ModerationService interface {
	CreateReport(ctx context.Context, reporterID string, req *ReportCreateRequest) (*models.Report, error)
	ListReports(ctx context.Context, actorID string) ([]*models.Report, error)
	ResolveReport(ctx context.Context, actorID, reportID string, req *ReportResolveRequest) (*models.Report, error)
	Broadcast(ctx context.Context, actorID string, req *BroadcastRequest) error
}

type DirectoryService interface {
	ListMembers(ctx context.Context, actorID, query string) ([]*models.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

type RoadmapService interface {
	ListRoadmaps(ctx context.Context, userID string) ([]*RoadmapView, error)
	ToggleStep(ctx context.Context, userID, roadmapID, stepID string) (*models.User, error)
}

type AssistantService interface {
	Chat(ctx context.Context, userID string, req *ChatRequest) (*ChatResponse, error)
	RecommendLearningPath(ctx context.Context, req *LearningPathRequest) (*LearningPath, error)
}

type NotificationEventService interface {
	SendBulkNotification(ctx context.Context, userIDs []string, title, message string) error
}

// ServiceManager aggregates all services and manages their lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Forum() ForumService
	Library() LibraryService
	Coordination() CoordinationService
	Challenge() ChallengeService
	Moderation() ModerationService
	Directory() DirectoryService
	Roadmap() RoadmapService
	Assistant() AssistantService
	Notification() NotificationEventService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
