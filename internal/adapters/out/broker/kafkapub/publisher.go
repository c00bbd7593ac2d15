// Package kafkapub publishes order events to a Kafka topic.
package kafkapub

import (
	"context"
	"fmt"

	"orderpanel/internal/adapters/out/broker"
	"orderpanel/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes synchronously so a failed write keeps the event in the
// outbox.
type Publisher struct {
	w messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	body, err := broker.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", msg.ID, err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   broker.PartitionKey(msg),
		Value: body,
		Time:  msg.Event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(msg.Event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("write event %s to kafka: %w", msg.ID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
