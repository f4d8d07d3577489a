package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

func TestModerationService_ResolveReport(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	v := validator.New()
	mockPublisher := events.NewMockEventPublisher(logger)
	notifications := NewNotificationEventService(mockPublisher, logger, v)
	service := NewModerationService(st, mockPublisher, notifications, logger, v)
	ctx := context.Background()

	report, err := service.CreateReport(ctx, "u-student-1", &ReportCreateRequest{
		TargetID:   "q-seed-2",
		TargetType: "question",
		Reason:     "Spam content",
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	t.Run("NonOwnerCannotResolve", func(t *testing.T) {
		_, err := service.ResolveReport(ctx, "u-faculty-1", report.ID, &ReportResolveRequest{Action: "dismiss"})

		var permErr *PermissionError
		if !errors.As(err, &permErr) {
			t.Fatalf("Expected PermissionError, got %v", err)
		}
	})

	t.Run("OwnerResolvesAndEventsFlow", func(t *testing.T) {
		mockPublisher.ClearEvents()

		resolved, err := service.ResolveReport(ctx, "u-owner", report.ID, &ReportResolveRequest{Action: "take_down"})
		if err != nil {
			t.Fatalf("ResolveReport failed: %v", err)
		}
		if resolved.ID != report.ID {
			t.Errorf("Expected report %s, got %s", report.ID, resolved.ID)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 2 {
			t.Fatalf("Expected resolution + notification events, got %d", len(published))
		}
		if published[0].Type != events.EventReportResolved {
			t.Errorf("Expected %s, got %s", events.EventReportResolved, published[0].Type)
		}
		if published[1].Type != events.EventBulkNotification {
			t.Errorf("Expected %s, got %s", events.EventBulkNotification, published[1].Type)
		}
	})

	t.Run("QueueIsEmptyAfterResolution", func(t *testing.T) {
		reports, err := service.ListReports(ctx, "u-owner")
		if err != nil {
			t.Fatalf("ListReports failed: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("Expected empty queue, got %d", len(reports))
		}
	})
}

func TestModerationService_Broadcast(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	v := validator.New()
	mockPublisher := events.NewMockEventPublisher(logger)
	notifications := NewNotificationEventService(mockPublisher, logger, v)
	service := NewModerationService(st, mockPublisher, notifications, logger, v)
	ctx := context.Background()

	t.Run("FacultyDenied", func(t *testing.T) {
		err := service.Broadcast(ctx, "u-faculty-1", &BroadcastRequest{Message: "Lab closed on Friday"})

		var permErr *PermissionError
		if !errors.As(err, &permErr) {
			t.Fatalf("Expected PermissionError, got %v", err)
		}
	})

	t.Run("OwnerBroadcasts", func(t *testing.T) {
		mockPublisher.ClearEvents()

		if err := service.Broadcast(ctx, "u-owner", &BroadcastRequest{Message: "CTF finals this weekend"}); err != nil {
			t.Fatalf("Broadcast failed: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 || published[0].Type != events.EventBroadcast {
			t.Fatalf("Expected one broadcast event, got %v", published)
		}
	})
}
