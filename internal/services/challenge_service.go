package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type challengeService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewChallengeService(st *store.Store, logger *slog.Logger, v *validator.Validator) ChallengeService {
	return &challengeService{store: st, logger: logger, validator: v}
}

func (s *challengeService) GetChallenge(ctx context.Context) (*models.WeeklyChallenge, error) {
	return s.store.GetChallenge(ctx)
}

func (s *challengeService) RequestJoin(ctx context.Context, actorID string) (*models.WeeklyChallenge, error) {
	s.logger.Info("Challenge join requested", "actor_id", actorID)
	return s.store.UpsertJoinRequest(ctx, actorID)
}

func (s *challengeService) DecideRequest(ctx context.Context, actorID string, req *MeetingDecisionRequest) (*models.WeeklyChallenge, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanModerateChallenge(actor.Role) {
		return nil, NewPermissionError("decide challenge requests", actor.Role)
	}

	s.logger.Info("Challenge request decided",
		"actor_id", actorID, "target_user", req.UserID, "action", req.Action)

	return s.store.SetJoinRequestStatus(ctx, req.UserID, models.MeetingRequestStatus(req.Action))
}
