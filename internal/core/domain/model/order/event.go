package order

import "time"

// EventType names what happened to an order.
type EventType string

const (
	EventOrderCreated       EventType = "OrderCreated"
	EventOrderStatusChanged EventType = "OrderStatusChanged"
	EventOrderDeleted       EventType = "OrderDeleted"
)

// Event is a fact about an order that downstream consumers (broker, live
// feed) are told about after the enclosing transaction commits.
type Event struct {
	Type       EventType `json:"type"`
	OrderID    int64     `json:"order_id"`
	RobloxUser string    `json:"roblox_user"`
	ItemName   string    `json:"item_name"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent snapshots o for the given event type.
func NewEvent(t EventType, o *Order, now time.Time) Event {
	return Event{
		Type:       t,
		OrderID:    o.ID(),
		RobloxUser: o.RobloxUser(),
		ItemName:   o.ItemName(),
		Status:     o.Status(),
		OccurredAt: now.UTC(),
	}
}
