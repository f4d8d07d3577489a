package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type notificationEventService struct {
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewNotificationEventService(publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) NotificationEventService {
	return &notificationEventService{
		eventPublisher: publisher,
		logger:         logger,
		validator:      v,
	}
}

// SendBulkNotification fans a notification out to a set of users over
// the event bus. Delivery (in-app feed, mail) is a subscriber concern.
func (s *notificationEventService) SendBulkNotification(ctx context.Context, userIDs []string, title, message string) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("no recipients")
	}
	if title == "" || message == "" {
		return fmt.Errorf("title and message are required")
	}

	err := s.eventPublisher.Publish(ctx, events.EventBulkNotification, events.BulkNotificationEvent{
		UserIDs: userIDs,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to publish bulk notification: %w", err)
	}

	s.logger.Info("Bulk notification published", "recipients", len(userIDs), "title", title)
	return nil
}
