package events

import (
	"time"
)

// Event is the envelope every published message carries.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

const (
	EventSource  = "cyberhub-service"
	EventVersion = "1.0"
)

// Event types published by the service layer.
const (
	EventBulkNotification = "system.bulk_notification"
	EventBroadcast        = "system.broadcast"
	EventRoleChanged      = "user.role_changed"
	EventReportResolved   = "moderation.report_resolved"
)

// BulkNotificationEvent carries a notification fan-out to a set of users.
type BulkNotificationEvent struct {
	UserIDs []string `json:"user_ids"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
}

// BroadcastEvent carries an owner announcement to the whole hub.
type BroadcastEvent struct {
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
}

// RoleChangedEvent records a privilege change applied to a user.
type RoleChangedEvent struct {
	UserID      string `json:"user_id"`
	OldRole     string `json:"old_role"`
	NewRole     string `json:"new_role"`
	ChangedByID string `json:"changed_by_id"`
}

// ReportResolvedEvent records a moderation decision on a report.
type ReportResolvedEvent struct {
	ReportID   string `json:"report_id"`
	ReporterID string `json:"reporter_id"`
	Action     string `json:"action"`
}
