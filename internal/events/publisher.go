package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventPublisher publishes domain events. Publishing is
// fire-and-forget; a failed publish is logged by the caller and never
// fails the originating request.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}

// ChannelEventPublisher publishes events over an in-process watermill
// gochannel pub/sub. Subscribers (notification fan-out, audit logging)
// attach to the same pub/sub instance.
type ChannelEventPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger *slog.Logger
}

// NewChannelEventPublisher creates the in-process publisher.
func NewChannelEventPublisher(logger *slog.Logger) *ChannelEventPublisher {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)

	return &ChannelEventPublisher{
		pubSub: pubSub,
		topic:  "cyberhub.events",
		logger: logger,
	}
}

// Subscribe returns a channel of raw messages on the event topic.
func (p *ChannelEventPublisher) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, p.topic)
}

// StartLogConsumer attaches a subscriber that drains the event topic
// and logs every event. The gochannel bus drops messages published
// with no subscriber attached, so the consumer must be running before
// the first mutation. Draining stops when the context is cancelled or
// the publisher is closed.
func (p *ChannelEventPublisher) StartLogConsumer(ctx context.Context) error {
	messages, err := p.pubSub.Subscribe(ctx, p.topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to event topic: %w", err)
	}

	go func() {
		for msg := range messages {
			var event Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				p.logger.Warn("Discarding malformed event", "message_id", msg.UUID)
				msg.Ack()
				continue
			}
			p.logger.Info("Event consumed", "event_type", event.Type, "event_id", event.ID)
			msg.Ack()
		}
	}()

	return nil
}

func (p *ChannelEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	event := Event{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", eventType)

	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Event published", "event_type", eventType, "event_id", event.ID)
	return nil
}

func (p *ChannelEventPublisher) Close() error {
	return p.pubSub.Close()
}

// MockEventPublisher records events in memory for tests.
type MockEventPublisher struct {
	logger *slog.Logger
	events []Event
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	event := Event{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	m.events = append(m.events, event)
	m.logger.Debug("Mock event recorded", "event_type", eventType)
	return nil
}

// GetPublishedEvents returns every event recorded so far.
func (m *MockEventPublisher) GetPublishedEvents() []Event {
	return m.events
}

// ClearEvents discards recorded events between test cases.
func (m *MockEventPublisher) ClearEvents() {
	m.events = nil
}

func (m *MockEventPublisher) Close() error { return nil }
