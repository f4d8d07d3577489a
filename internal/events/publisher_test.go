package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// recordingHandler captures log messages so tests can observe the
// consumer side of the bus.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) contains(msg string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func TestChannelEventPublisher_PublishDelivers(t *testing.T) {
	p := NewChannelEventPublisher(slog.New(&recordingHandler{}))
	defer p.Close()
	ctx := context.Background()

	messages, err := p.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	err = p.Publish(ctx, EventBroadcast, BroadcastEvent{SenderID: "u-owner", Message: "CTF finals this weekend"})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case msg := <-messages:
		if got := msg.Metadata.Get("event_type"); got != EventBroadcast {
			t.Errorf("Expected metadata event_type %q, got %q", EventBroadcast, got)
		}

		var event Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			t.Fatalf("Failed to decode payload: %v", err)
		}
		if event.Type != EventBroadcast || event.Source != EventSource || event.Version != EventVersion {
			t.Errorf("Envelope mismatch: %+v", event)
		}
		if event.ID == "" || event.Timestamp.IsZero() {
			t.Error("Envelope must carry an id and timestamp")
		}
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a delivered message")
	}
}

func TestChannelEventPublisher_LogConsumerDrains(t *testing.T) {
	rec := &recordingHandler{}
	p := NewChannelEventPublisher(slog.New(rec))
	defer p.Close()
	ctx := context.Background()

	if err := p.StartLogConsumer(ctx); err != nil {
		t.Fatalf("StartLogConsumer failed: %v", err)
	}

	err := p.Publish(ctx, EventBulkNotification, BulkNotificationEvent{
		UserIDs: []string{"u-student-1"},
		Title:   "Challenge posted",
		Message: "A new weekly challenge is live.",
	})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if rec.contains("Event consumed") {
			return
		}
		select {
		case <-deadline:
			t.Fatal("Consumer never drained the published event")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
