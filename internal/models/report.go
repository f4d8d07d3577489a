package models

import "time"

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// ReportAction is the moderator's terminal decision. Both actions
// remove the report from the active queue; the distinction only
// changes the notification sent to the reporter.
type ReportAction string

const (
	ReportDismiss  ReportAction = "dismiss"
	ReportTakeDown ReportAction = "take_down"
)

type Report struct {
	ID           string       `json:"id"`
	ReporterID   string       `json:"reporter_id"`
	ReporterName string       `json:"reporter_name"`
	TargetID     string       `json:"target_id"`
	TargetTitle  string       `json:"target_title"`
	TargetType   string       `json:"target_type"`
	Reason       string       `json:"reason"`
	Status       ReportStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}
