package commands

import (
	"context"
	"fmt"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"github.com/google/uuid"
)

// EventFeed receives every event the relay delivers, after the broker has
// accepted it.
type EventFeed interface {
	Broadcast(event order.Event)
}

// RelayOutboxCommandHandler moves pending outbox events to the broker and the
// live feed, oldest first.
//
// Delivery stops at the first publisher error so events of one order keep
// their order; everything sent before the failure is marked published and the
// rest waits for the next run. Delivery is at-least-once: a crash between
// publishing and commit re-sends the batch.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	feed       EventFeed
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	feed EventFeed,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		feed:       feed,
	}
}

// Handle returns how many events were delivered.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.ListPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var publishErr error
	published := make([]uuid.UUID, 0, len(pending))
	for _, msg := range pending {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			publishErr = fmt.Errorf("relay event %s: %w", msg.ID, err)
			break
		}
		published = append(published, msg.ID)
		if h.feed != nil {
			h.feed.Broadcast(msg.Event)
		}
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published...); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
