// Package broker holds what the event publishers share: the wire envelope an
// outbox message is sent as, and a publisher that drops everything for
// deployments without a broker.
//
// Publishers:
//   - kafkapub.Publisher writes to one topic, keyed by order id so all events
//     of an order land on the same partition
//   - rabbitpub.Publisher publishes persistent messages to one durable queue
//   - NopPublisher acknowledges without sending
package broker

import (
	"context"
	"encoding/json"
	"strconv"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"github.com/google/uuid"
)

// Envelope is the JSON body of every published order event.
type Envelope struct {
	EventID uuid.UUID `json:"event_id"`
	order.Event
}

func Encode(msg ports.OutboxMessage) ([]byte, error) {
	return json.Marshal(Envelope{EventID: msg.ID, Event: msg.Event})
}

func Decode(body []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(body, &env)
	return env, err
}

// PartitionKey groups the events of one order.
func PartitionKey(msg ports.OutboxMessage) []byte {
	return []byte(strconv.FormatInt(msg.Event.OrderID, 10))
}

// NopPublisher is used when EVENT_BROKER=none.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ports.OutboxMessage) error { return nil }

func (NopPublisher) Close() error { return nil }
