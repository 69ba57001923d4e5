package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes named events to the bus topic. Publishing is
// fire-and-forget relative to the primary write: callers log a failure and
// move on, they never roll back the record.
type Producer struct {
	writer *kafka.Writer
	source string
	bus    string
	logger *zap.Logger
}

func NewProducer(brokers, topic, source, bus string, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		source: source,
		bus:    bus,
		logger: logger,
	}
}

func (p *Producer) Publish(ctx context.Context, eventName, payload string) error {
	event := Envelope{
		EventID:    uuid.NewString(),
		Source:     p.source,
		DetailType: eventName,
		Detail:     payload,
		Bus:        p.bus,
		Timestamp:  time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(eventName),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("event_id", event.EventID),
			zap.String("event_name", eventName),
			zap.Error(err))
		return err
	}

	p.logger.Info("Event published",
		zap.String("event_id", event.EventID),
		zap.String("event_name", eventName))

	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
