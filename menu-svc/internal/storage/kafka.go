package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"restaurant-manager/menu-svc/internal/domain"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishMenuEvent keys messages by item so per-item events stay ordered;
// catalog-wide events are keyed by restaurant.
func (p *KafkaPublisher) PublishMenuEvent(ctx context.Context, event domain.MenuEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.Item
	if key == "" {
		key = event.Restaurant
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  event.Timestamp,
	})
}
