// Package rabbitpub publishes order events to a durable RabbitMQ queue.
package rabbitpub

import (
	"context"
	"fmt"

	"orderpanel/internal/adapters/out/broker"
	"orderpanel/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
}

// Dial connects to url, opens a channel and declares queue as durable.
func Dial(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	p := newPublisher(ch, queue)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, queue string) *Publisher {
	return &Publisher{ch: ch, queue: queue}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	body, err := broker.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", msg.ID, err)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         string(msg.Event.Type),
		Timestamp:    msg.Event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event %s to %s: %w", msg.ID, p.queue, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}
