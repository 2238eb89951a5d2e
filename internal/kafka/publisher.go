package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers string
	Topic   string
	// Writer overrides the kafka-go writer built from Brokers and Topic.
	Writer Writer
}

// Publisher fans telemetry rows out to a topic, keyed by device id so a
// device's events stay on one partition.
type Publisher struct {
	writer Writer
	topic  string
}

func NewPublisher(cfg Config) *Publisher {
	w := cfg.Writer
	if w == nil {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(cfg.Brokers, ",")...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	}
	return &Publisher{writer: w, topic: cfg.Topic}
}

func (p *Publisher) Publish(ctx context.Context, event TelemetryEvent) error {
	const fn = "Kafka:Publish"
	record := StructuredConnectRecord{
		Schema:  TelemetrySchema,
		Payload: event,
	}
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.DeviceID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.DebugContext(ctx, "Published telemetry event",
		"topic", p.topic,
		"device_id", event.DeviceID,
		"event_type", event.EventType,
	)
	return nil
}

func (p *Publisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing telemetry publisher...")
	if err := p.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing kafka writer", "error", err)
	}
}
