package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type moderationService struct {
	store          *store.Store
	eventPublisher events.EventPublisher
	notifications  NotificationEventService
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewModerationService(st *store.Store, publisher events.EventPublisher, notifications NotificationEventService, logger *slog.Logger, v *validator.Validator) ModerationService {
	return &moderationService{
		store:          st,
		eventPublisher: publisher,
		notifications:  notifications,
		logger:         logger,
		validator:      v,
	}
}

func (s *moderationService) CreateReport(ctx context.Context, reporterID string, req *ReportCreateRequest) (*models.Report, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	s.logger.Info("Report filed", "reporter_id", reporterID, "target_type", req.TargetType, "target_id", req.TargetID)

	return s.store.AddReport(ctx, reporterID, store.NewReportParams{
		TargetID:    req.TargetID,
		TargetTitle: req.TargetTitle,
		TargetType:  req.TargetType,
		Reason:      req.Reason,
	})
}

func (s *moderationService) ListReports(ctx context.Context, actorID string) ([]*models.Report, error) {
	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanResolveReports(actor.Role) {
		return nil, NewPermissionError("view the report queue", actor.Role)
	}

	return s.store.ListReports(ctx), nil
}

// ResolveReport removes the report from the queue; dismiss and
// take-down differ only in the notification sent to the reporter.
func (s *moderationService) ResolveReport(ctx context.Context, actorID, reportID string, req *ReportResolveRequest) (*models.Report, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanResolveReports(actor.Role) {
		return nil, NewPermissionError("resolve reports", actor.Role)
	}

	report, err := s.store.ResolveReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.EventReportResolved, events.ReportResolvedEvent{
		ReportID:   report.ID,
		ReporterID: report.ReporterID,
		Action:     req.Action,
	}); err != nil {
		s.logger.Warn("Failed to publish report resolution event", "error", err)
	}

	message := "Your report was reviewed and dismissed."
	if models.ReportAction(req.Action) == models.ReportTakeDown {
		message = "Your report was reviewed and the content was taken down."
	}
	if err := s.notifications.SendBulkNotification(ctx, []string{report.ReporterID}, "Report resolved", message); err != nil {
		s.logger.Warn("Failed to notify reporter", "error", err)
	}

	s.logger.Info("Report resolved", "report_id", reportID, "action", req.Action)
	return report, nil
}

func (s *moderationService) Broadcast(ctx context.Context, actorID string, req *BroadcastRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return errs
	}

	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	if !models.CanBroadcast(actor.Role) {
		return NewPermissionError("broadcast announcements", actor.Role)
	}

	s.logger.Info("Broadcasting announcement", "actor_id", actorID)

	return s.eventPublisher.Publish(ctx, events.EventBroadcast, events.BroadcastEvent{
		SenderID: actorID,
		Message:  req.Message,
	})
}
