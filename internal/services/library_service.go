package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type libraryService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewLibraryService(st *store.Store, logger *slog.Logger, v *validator.Validator) LibraryService {
	return &libraryService{store: st, logger: logger, validator: v}
}

func (s *libraryService) ListCourses(ctx context.Context, query string) ([]*models.Course, error) {
	return s.store.ListCourses(ctx, query), nil
}

func (s *libraryService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.store.GetCourse(ctx, id)
}

// AddResource computes the initial status inside the store: faculty
// and owner submissions skip review entirely.
func (s *libraryService) AddResource(ctx context.Context, actorID string, req *ResourceCreateRequest) (*models.CourseResource, error) {
	s.logger.Info("Adding resource", "actor_id", actorID, "course_id", req.CourseID, "name", req.Name)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	return s.store.AddResource(ctx, actorID, store.NewResourceParams{
		CourseID: req.CourseID,
		Name:     req.Name,
		Type:     models.ResourceType(req.Type),
		URL:      req.URL,
		Origin:   models.ResourceOrigin(req.Origin),
	})
}

func (s *libraryService) ReviewResource(ctx context.Context, actorID, resourceID string, approve bool) (*models.CourseResource, error) {
	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanReviewResource(actor.Role) {
		return nil, NewPermissionError("review a resource", actor.Role)
	}

	status := models.ResourceRejected
	if approve {
		status = models.ResourceApproved
	}

	s.logger.Info("Reviewing resource", "actor_id", actorID, "resource_id", resourceID, "status", status)
	return s.store.SetResourceStatus(ctx, resourceID, status)
}

func (s *libraryService) ListResources(ctx context.Context, origin, status string) ([]*models.CourseResource, error) {
	return s.store.ListResources(ctx, models.ResourceOrigin(origin), models.ResourceStatus(status)), nil
}

// ListPendingResources is the review queue; visibility follows the
// review capability.
func (s *libraryService) ListPendingResources(ctx context.Context, actorID string) ([]*models.CourseResource, error) {
	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanReviewResource(actor.Role) {
		return nil, NewPermissionError("view the review queue", actor.Role)
	}

	return s.store.ListResources(ctx, "", models.ResourcePending), nil
}
