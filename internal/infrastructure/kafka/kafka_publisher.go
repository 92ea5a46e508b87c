package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

const (
	TopicRiskEvents = "risk-events"
	TopicScanEvents = "scan-events"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

var _ domain.MessagePublisher = (*DefaultKafkaPublisher)(nil)

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) PublishHighRisk(event HighRiskEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicRiskEvents, domain.Message{Key: []byte(event.MerchantID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishScanCompleted(event ScanCompletedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicScanEvents, domain.Message{Key: []byte(event.MerchantID), Value: v})
}
