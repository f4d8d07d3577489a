package services

import (
	"context"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

func TestNotificationEventService_PublishEvents(t *testing.T) {
	logger := testLogger()
	mockPublisher := events.NewMockEventPublisher(logger)
	service := NewNotificationEventService(mockPublisher, logger, validator.New())
	ctx := context.Background()

	t.Run("SendBulkNotification", func(t *testing.T) {
		err := service.SendBulkNotification(ctx, []string{"u-student-1", "u-student-2"}, "Challenge posted", "A new weekly challenge is live.")
		if err != nil {
			t.Fatalf("SendBulkNotification failed: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}

		event := published[0]
		if event.Type != events.EventBulkNotification {
			t.Errorf("Expected event type %q, got %q", events.EventBulkNotification, event.Type)
		}
		if event.Source != events.EventSource {
			t.Errorf("Expected source %q, got %q", events.EventSource, event.Source)
		}
		if event.Version != events.EventVersion {
			t.Errorf("Expected version %q, got %q", events.EventVersion, event.Version)
		}
		if event.ID == "" || event.Timestamp.IsZero() {
			t.Error("Event must carry an id and timestamp")
		}

		data, ok := event.Data.(events.BulkNotificationEvent)
		if !ok {
			t.Fatalf("Unexpected payload type %T", event.Data)
		}
		if len(data.UserIDs) != 2 || data.Title != "Challenge posted" {
			t.Errorf("Payload mismatch: %+v", data)
		}
	})

	t.Run("EmptyRecipientsRejected", func(t *testing.T) {
		if err := service.SendBulkNotification(ctx, nil, "Title", "Message"); err == nil {
			t.Error("Expected error for empty recipient list")
		}
	})

	t.Run("BlankTitleRejected", func(t *testing.T) {
		if err := service.SendBulkNotification(ctx, []string{"u-student-1"}, "", "Message"); err == nil {
			t.Error("Expected error for blank title")
		}
	})
}
