package models

import "time"

type MeetingRequestStatus string

const (
	RequestPending  MeetingRequestStatus = "pending"
	RequestAccepted MeetingRequestStatus = "accepted"
	RequestRejected MeetingRequestStatus = "rejected"
)

type MeetingRequest struct {
	UserID   string               `json:"user_id"`
	UserName string               `json:"user_name"`
	Status   MeetingRequestStatus `json:"status"`
}

// WeeklyChallenge is a singleton: the hub runs exactly one live
// challenge session at a time.
type WeeklyChallenge struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Difficulty   string           `json:"difficulty"`
	RewardBadge  string           `json:"reward_badge"`
	ExpiresAt    time.Time        `json:"expires_at"`
	Winners      []string         `json:"winners"`
	ModeratorID  string           `json:"moderator_id"`
	JoinRequests []MeetingRequest `json:"join_requests"`
}
