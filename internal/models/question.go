package models

import "time"

type QuestionStatus string

const (
	QuestionUnanswered QuestionStatus = "unanswered"
	QuestionAnswered   QuestionStatus = "answered"
)

type Question struct {
	ID         string         `json:"id"`
	AuthorID   string         `json:"author_id"`
	AuthorName string         `json:"author_name"`
	AuthorRole UserRole       `json:"author_role"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Category   string         `json:"category"`
	Status     QuestionStatus `json:"status"`
	IsFeatured bool           `json:"is_featured"`
	Answers    []Answer       `json:"answers"`
	CreatedAt  time.Time      `json:"created_at"`
}

type Answer struct {
	ID         string   `json:"id"`
	AuthorID   string   `json:"author_id"`
	AuthorName string   `json:"author_name"`
	AuthorRole UserRole `json:"author_role"`
	Text       string   `json:"text"`

	// Frozen at creation from the author's role at that moment; a later
	// promotion or demotion never rewrites the historical record.
	IsVerified bool `json:"is_verified"`

	Upvotes   int       `json:"upvotes"`
	CreatedAt time.Time `json:"created_at"`
}
