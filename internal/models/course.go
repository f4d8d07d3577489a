package models

import "time"

type ResourceStatus string

const (
	ResourcePending  ResourceStatus = "pending"
	ResourceApproved ResourceStatus = "approved"
	ResourceRejected ResourceStatus = "rejected"
)

type ResourceOrigin string

const (
	OriginOfficial  ResourceOrigin = "official"
	OriginPractical ResourceOrigin = "practical"
	OriginCommunity ResourceOrigin = "community"
)

type ResourceType string

const (
	ResourceSummary ResourceType = "summary"
	ResourceVideo   ResourceType = "video"
	ResourceTool    ResourceType = "tool"
	ResourceCert    ResourceType = "cert"
	ResourceArticle ResourceType = "article"
)

type Course struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Resources   []CourseResource `json:"resources"`
}

type CourseResource struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       ResourceType   `json:"type"`
	URL        string         `json:"url"`
	Status     ResourceStatus `json:"status"`
	Origin     ResourceOrigin `json:"origin"`
	AuthorID   string         `json:"author_id"`
	AuthorName string         `json:"author_name"`
	CreatedAt  time.Time      `json:"created_at"`
}
