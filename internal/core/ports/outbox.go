package ports

import (
	"context"

	"orderpanel/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OutboxMessage is an order event waiting in the outbox for delivery.
type OutboxMessage struct {
	ID    uuid.UUID
	Event order.Event
}

// OutboxRepository stores order events in the same transaction as the change
// that produced them and hands them to the relay afterwards.
type OutboxRepository interface {
	Append(ctx context.Context, events ...order.Event) error

	// ListPending returns up to limit unpublished messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids ...uuid.UUID) error
}

// EventPublisher delivers an outbox message to a broker. A returned error
// leaves the message pending for the next relay run.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
