// Package kafka publishes notifications to the delivery topic. A downstream
// delivery service consumes the topic and owns physical delivery (push,
// mail, webhook).
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/config"
	"github.com/couchcryptid/weather-alarm-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Notifier produces notification records to the notify topic.
// It implements engine.Notifier.
type Notifier struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewNotifier creates a Kafka producer for the configured notify topic.
func NewNotifier(cfg *config.Config, logger *slog.Logger) *Notifier {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaNotifyTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Notifier{writer: w, logger: logger}
}

// Send serializes and publishes one notification. The engine treats a
// returned error as a failed dispatch and leaves the cooldown unrecorded.
func (n *Notifier) Send(ctx context.Context, notification domain.Notification) error {
	msg, err := serializeToMessage(notification)
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, msg)
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

// serializeToMessage marshals a Notification into a Kafka message keyed by
// recipient target so one recipient's notifications stay ordered.
func serializeToMessage(notification domain.Notification) (kafkago.Message, error) {
	data, err := json.Marshal(notification)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize notification: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(notification.Target),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(notification.Kind)},
			{Key: "sent_at", Value: []byte(notification.SentAt.Format(time.RFC3339))},
		},
	}, nil
}
