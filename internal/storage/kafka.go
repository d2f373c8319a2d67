package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"
)

// KafkaTicketPublisher emits kitchen tickets keyed by order id.
// Delivery is at-least-once; kitchen consumers dedupe on the key.
type KafkaTicketPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaTicketPublisher(writer *kafka.Writer) *KafkaTicketPublisher {
	return &KafkaTicketPublisher{Writer: writer}
}

func (p *KafkaTicketPublisher) PublishTicket(ctx context.Context, ticket domain.KitchenTicket) error {
	payload, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ticket.OrderID),
		Value: payload,
	})
}

var _ service.TicketPublisher = (*KafkaTicketPublisher)(nil)
