package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// ListCourses returns the course catalog, optionally filtered by a
// case-insensitive name search.
func (s *Store) ListCourses(ctx context.Context, query string) []*models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]*models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		result = append(result, copyCourse(c))
	}
	return result
}

// GetCourse returns a copy of one course.
func (s *Store) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.findCourse(id)
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return copyCourse(c), nil
}

// NewResourceParams carries validated library submission input.
type NewResourceParams struct {
	CourseID string
	Name     string
	Type     models.ResourceType
	URL      string
	Origin   models.ResourceOrigin
}

// AddResource inserts a resource into a course. Submissions from
// users whose role auto-approves skip the Pending state entirely.
func (s *Store) AddResource(ctx context.Context, authorID string, params NewResourceParams) (*models.CourseResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.findUser(authorID)
	if author == nil {
		return nil, ErrUserNotFound
	}

	c := s.findCourse(params.CourseID)
	if c == nil {
		return nil, ErrCourseNotFound
	}

	status := models.ResourcePending
	if models.CanAutoApproveResource(author.Role) {
		status = models.ResourceApproved
	}

	resource := models.CourseResource{
		ID:         "r-" + uuid.New().String(),
		Name:       params.Name,
		Type:       params.Type,
		URL:        params.URL,
		Status:     status,
		Origin:     params.Origin,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now().UTC(),
	}

	c.Resources = append(c.Resources, resource)

	appendActivity(author, models.ActivityResource, resource.ID, resource.Name)
	s.persistUsers(ctx)

	return &resource, nil
}

// SetResourceStatus applies a review decision. The transition is an
// idempotent overwrite: re-invoking a review replaces the previous
// terminal state, last write wins.
func (s *Store) SetResourceStatus(ctx context.Context, resourceID string, status models.ResourceStatus) (*models.CourseResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		for i := range c.Resources {
			if c.Resources[i].ID == resourceID {
				c.Resources[i].Status = status
				resource := c.Resources[i]
				return &resource, nil
			}
		}
	}

	return nil, ErrResourceNotFound
}

// ListResources projects the library tabs: resources across all
// courses filtered by origin and/or status. Zero values match all.
func (s *Store) ListResources(ctx context.Context, origin models.ResourceOrigin, status models.ResourceStatus) []*models.CourseResource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.CourseResource
	for _, c := range s.courses {
		for i := range c.Resources {
			r := c.Resources[i]
			if origin != "" && r.Origin != origin {
				continue
			}
			if status != "" && r.Status != status {
				continue
			}
			cp := r
			result = append(result, &cp)
		}
	}
	return result
}

// findCourse must be called with the lock held.
func (s *Store) findCourse(id string) *models.Course {
	for _, c := range s.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}
