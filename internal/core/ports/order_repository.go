// Package ports defines the contracts between the order panel core and its
// infrastructure: persistence, the transactional outbox, event delivery and
// operator sessions.
package ports

import (
	"context"

	"orderpanel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and returns it as stored, carrying the ID and
	// creation time the store assigned.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order by ID. Returns errs.ObjectNotFoundError when no
	// row matches.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus writes only the status column of an existing order.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order row. Returns errs.ObjectNotFoundError when no
	// row matches.
	Delete(ctx context.Context, aggregate *order.Order) error
}
