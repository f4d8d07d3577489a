package models

import "time"

// Defaults applied when a proposal omits the optional fields.
const (
	DefaultProjectSlots    = 3
	DefaultProjectCategory = "Side Project"
)

var DefaultProjectSkills = []string{"Engineering"}

type ProjectIdea struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ProposerID     string    `json:"proposer_id"`
	ProposerName   string    `json:"proposer_name"`
	ProposerRole   UserRole  `json:"proposer_role"`
	RequiredSkills []string  `json:"required_skills"`
	Slots          int       `json:"slots"`
	FilledSlots    int       `json:"filled_slots"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
