package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type coordinationService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCoordinationService(st *store.Store, logger *slog.Logger, v *validator.Validator) CoordinationService {
	return &coordinationService{store: st, logger: logger, validator: v}
}

func (s *coordinationService) ProposeProject(ctx context.Context, actorID string, req *ProjectCreateRequest) (*models.ProjectIdea, error) {
	s.logger.Info("Proposing project", "actor_id", actorID, "title", req.Title)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanProposeProject(actor.Role) {
		return nil, NewPermissionError("propose a project", actor.Role)
	}

	return s.store.AddProject(ctx, actorID, store.NewProjectParams{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Slots:          req.Slots,
		Category:       req.Category,
	})
}

func (s *coordinationService) ToggleMembership(ctx context.Context, actorID, projectID string) (*MembershipResponse, error) {
	result, err := s.store.ToggleProjectMembership(ctx, actorID, projectID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Project membership toggled",
		"actor_id", actorID, "project_id", projectID, "joined", result.Joined)

	return &MembershipResponse{
		Project: result.Project,
		User:    result.User,
		Joined:  result.Joined,
	}, nil
}

func (s *coordinationService) ListProjects(ctx context.Context) ([]*models.ProjectIdea, error) {
	return s.store.ListProjects(ctx), nil
}
