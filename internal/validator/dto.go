package validator

// RegisterRequest represents the request structure for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,university_email"`
	Password string `json:"password" validate:"required,min=6"`
	Major    string `json:"major" validate:"required,max=100"`
}

// LoginRequest represents the request structure for authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents self-service profile edits
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Major     *string `json:"major" validate:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
}

// UpdateRoleRequest represents a privilege change applied to a user
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// QuestionCreateRequest represents the request structure for forum posts
type QuestionCreateRequest struct {
	Title    string `json:"title" validate:"required,question_title"`
	Body     string `json:"body" validate:"required,min=1,max=5000"`
	Category string `json:"category" validate:"omitempty,max=50"`
}

// AnswerCreateRequest represents a reply to a question
type AnswerCreateRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// ResourceCreateRequest represents a library submission
type ResourceCreateRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=200"`
	Type     string `json:"type" validate:"required,resource_type"`
	URL      string `json:"url" validate:"required,url,max=500"`
	Origin   string `json:"origin" validate:"required,resource_origin"`
}

// ResourceReviewRequest represents an approve/reject decision
type ResourceReviewRequest struct {
	Approve bool `json:"approve"`
}

// ProjectCreateRequest represents a collaboration proposal
type ProjectCreateRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"required,max=2000"`
	RequiredSkills []string `json:"required_skills" validate:"omitempty,max=10,dive,max=50"`
	Slots          int      `json:"slots" validate:"omitempty,min=1,max=20"`
	Category       string   `json:"category" validate:"omitempty,max=50"`
}

// ReportCreateRequest represents a moderation flag
type ReportCreateRequest struct {
	TargetID    string `json:"target_id" validate:"required"`
	TargetTitle string `json:"target_title" validate:"omitempty,max=200"`
	TargetType  string `json:"target_type" validate:"required,max=50"`
	Reason      string `json:"reason" validate:"required,min=1,max=1000"`
}

// ReportResolveRequest represents an owner decision on a report
type ReportResolveRequest struct {
	Action string `json:"action" validate:"required,report_action"`
}

// MeetingDecisionRequest represents a moderator decision on a
// challenge join request
type MeetingDecisionRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Action string `json:"action" validate:"required,meeting_action"`
}

// BroadcastRequest represents an owner announcement
type BroadcastRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1000"`
}

// ChatRequest represents a turn sent to the assistant
type ChatRequest struct {
	Message   string     `json:"message" validate:"required,min=1,max=4000"`
	History   []ChatTurn `json:"history" validate:"omitempty,max=50,dive"`
	UseSearch bool       `json:"use_search"`
}

// ChatTurn is one prior role-tagged turn of the conversation
type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required,max=4000"`
}

// LearningPathRequest represents a free-text goal for the structured
// recommendation call
type LearningPathRequest struct {
	Goal string `json:"goal" validate:"required,min=1,max=2000"`
}
