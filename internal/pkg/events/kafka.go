package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type envelope struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// KafkaPublisher writes events to a single topic, keyed by aggregate id.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func newMessage(event Event) (kafka.Message, error) {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(envelope{
		EventType:  event.Type,
		OccurredAt: occurredAt,
		Data:       event.Payload,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	return kafka.Message{
		Key:   []byte(event.Key),
		Value: payload,
		Time:  occurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}, nil
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event Event) error {
	slog.Debug("event not published, no broker configured", "event_type", event.Type, "key", event.Key)
	return nil
}

func (LogPublisher) Close() error { return nil }

// PublishLogged publishes event and logs a failure instead of returning it.
func PublishLogged(ctx context.Context, p Publisher, event Event) {
	if err := p.Publish(ctx, event); err != nil {
		slog.Error("failed to publish event", "event_type", event.Type, "key", event.Key, "error", err)
	}
}
