// Package outboxrepo stores order events in the outbox_events table until the
// relay job has delivered them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"github.com/google/uuid"
)

// EventDTO is one outbox row. Seq gives the relay a stable delivery order;
// EventID is what consumers see.
type EventDTO struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	EventID     uuid.UUID  `gorm:"type:char(36);uniqueIndex;not null"`
	EventType   string     `gorm:"size:32;not null"`
	OrderID     int64      `gorm:"not null;index"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (EventDTO) TableName() string {
	return "outbox_events"
}

func fromDomain(event order.Event) (EventDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return EventDTO{}, err
	}
	return EventDTO{
		EventID:    uuid.New(),
		EventType:  string(event.Type),
		OrderID:    event.OrderID,
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}, nil
}

func toMessage(dto EventDTO) (ports.OutboxMessage, error) {
	var event order.Event
	if err := json.Unmarshal(dto.Payload, &event); err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{ID: dto.EventID, Event: event}, nil
}
