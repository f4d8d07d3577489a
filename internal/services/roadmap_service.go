package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
)

type roadmapService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewRoadmapService(st *store.Store, logger *slog.Logger) RoadmapService {
	return &roadmapService{store: st, logger: logger}
}

func (s *roadmapService) ListRoadmaps(ctx context.Context, userID string) ([]*RoadmapView, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roadmaps := s.store.ListRoadmaps(ctx)
	views := make([]*RoadmapView, 0, len(roadmaps))
	for _, r := range roadmaps {
		views = append(views, &RoadmapView{
			Roadmap:           r,
			CompletionPercent: r.CompletionPercent(user.CompletedSteps),
		})
	}
	return views, nil
}

func (s *roadmapService) ToggleStep(ctx context.Context, userID, roadmapID, stepID string) (*models.User, error) {
	result, err := s.store.ToggleRoadmapStep(ctx, userID, roadmapID, stepID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Roadmap step toggled",
		"user_id", userID, "roadmap_id", roadmapID, "step_id", stepID, "completed", result.Completed)

	return result.User, nil
}
