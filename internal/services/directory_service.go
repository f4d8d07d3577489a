package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
)

type directoryService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewDirectoryService(st *store.Store, logger *slog.Logger) DirectoryService {
	return &directoryService{store: st, logger: logger}
}

// ListMembers exposes the full member directory to elevated roles
// only; the leaderboard is the public alternative.
func (s *directoryService) ListMembers(ctx context.Context, actorID, query string) ([]*models.User, error) {
	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanAccessDirectory(actor.Role) {
		return nil, NewPermissionError("access the member directory", actor.Role)
	}

	return s.store.ListUsers(ctx, query), nil
}

func (s *directoryService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.store.Leaderboard(ctx, limit), nil
}
