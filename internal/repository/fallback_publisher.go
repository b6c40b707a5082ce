package repository

import (
	"context"
	"fmt"

	"FinDash/internal/domain/models"
	"FinDash/internal/domain/repository"
	pkgkafka "FinDash/pkg/kafka"
)

// KafkaFallbackPublisher implements EventPublisher for Kafka. Events are
// keyed by subject so one instrument's events stay ordered.
type KafkaFallbackPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaFallbackPublisher(producer *pkgkafka.Producer, topic string) *KafkaFallbackPublisher {
	return &KafkaFallbackPublisher{producer: producer, topic: topic}
}

func (p *KafkaFallbackPublisher) PublishFallback(ctx context.Context, ev models.FallbackEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(ev.Subject), ev); err != nil {
		return fmt.Errorf("publish fallback %s: %w", ev.ID, err)
	}
	return nil
}

// Close is a no-op; the producer is shared and closed by its owner.
func (p *KafkaFallbackPublisher) Close() error { return nil }

var _ repository.EventPublisher = (*KafkaFallbackPublisher)(nil)
