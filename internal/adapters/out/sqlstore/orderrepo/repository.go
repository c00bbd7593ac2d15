package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db       *gorm.DB
	recorder eventRecorder
}

// eventRecorder collects order events until the unit of work commits.
type eventRecorder interface {
	Record(event order.Event)
}

func NewGormOrderRepository(db *gorm.DB, recorder eventRecorder) *GormOrderRepository {
	return &GormOrderRepository{
		db:       db,
		recorder: recorder,
	}
}

// Add inserts a new order and returns it with the id and created_at the
// database assigned.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.IsPersisted() {
		return nil, errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %d is already stored", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.recorder.Record(order.NewEvent(order.EventOrderCreated, stored, time.Now()))
	return stored, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	return toDomain(dto)
}

// UpdateStatus writes the status column only. The rest of the row is
// immutable after intake.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return fmt.Errorf("update order %d status: %w", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.recorder.Record(order.NewEvent(order.EventOrderStatusChanged, aggregate, time.Now()))
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID())
	if result.Error != nil {
		return fmt.Errorf("delete order %d: %w", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.recorder.Record(order.NewEvent(order.EventOrderDeleted, aggregate, time.Now()))
	return nil
}
