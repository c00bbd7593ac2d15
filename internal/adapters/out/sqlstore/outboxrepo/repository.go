package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Append(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromDomain(event)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.Type, err)
		}
		dtos = append(dtos, dto)
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return fmt.Errorf("append outbox events: %w", err)
	}
	return nil
}

func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list pending outbox events: %w", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, decodeErr := toMessage(dto)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode outbox event %s: %w", dto.EventID, decodeErr)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("event_id IN ?", keys).
		Update("published_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("mark outbox events published: %w", err)
	}
	return nil
}
