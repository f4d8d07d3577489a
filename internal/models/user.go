package models

import "time"

type UserRole string
type Role = UserRole // Alias for compatibility

const (
	RoleStudent UserRole = "student"
	RoleExpert  UserRole = "expert"
	RoleFaculty UserRole = "faculty"
	RoleOwner   UserRole = "owner"
)

// SkillScores holds the five self-assessment axes shown on the profile radar.
type SkillScores struct {
	Networks int `json:"networks"`
	Security int `json:"security"`
	Software int `json:"software"`
	Hardware int `json:"hardware"`
	Research int `json:"research"`
}

// ActivityKind classifies an entry in a user's activity log.
type ActivityKind string

const (
	ActivityQuestion ActivityKind = "question"
	ActivityAnswer   ActivityKind = "answer"
	ActivityResource ActivityKind = "resource"
	ActivityProject  ActivityKind = "project"
	ActivityRoadmap  ActivityKind = "roadmap"
)

type ActivityEntry struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	RefID     string       `json:"ref_id"`
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
}

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`

	// Never serialized; credentials are held in memory only.
	Password string `json:"-"`

	// Profile info
	AvatarURL string `json:"avatar_url"`
	Major     string `json:"major"`

	// Standing
	Karma          int         `json:"karma"`
	Badges         []string    `json:"badges"`
	SkillScores    SkillScores `json:"skill_scores"`
	CompletedSteps []string    `json:"completed_steps"`
	JoinedProjects []string    `json:"joined_projects"`

	Activity []ActivityEntry `json:"activity"`

	// Bumped whenever the role changes so outstanding tokens go stale.
	SessionEpoch int64 `json:"session_epoch"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasJoined reports whether the user's joined-set contains the project.
func (u *User) HasJoined(projectID string) bool {
	for _, id := range u.JoinedProjects {
		if id == projectID {
			return true
		}
	}
	return false
}

// HasCompletedStep reports whether a roadmap step id is in the completed set.
func (u *User) HasCompletedStep(stepID string) bool {
	for _, id := range u.CompletedSteps {
		if id == stepID {
			return true
		}
	}
	return false
}
