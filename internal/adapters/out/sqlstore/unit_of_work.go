// Package sqlstore is the GORM-backed storage of the order panel. It opens
// the PostgreSQL or MySQL connection, migrates the schema and implements the
// Unit of Work over GORM transactions.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = o.TransitionTo(order.Processing); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().UpdateStatus(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // also writes the OrderStatusChanged outbox row
//
// Each UnitOfWork instance owns one transaction and must not be shared
// between goroutines.
package sqlstore

import (
	"context"
	"fmt"

	"orderpanel/internal/adapters/out/sqlstore/catalogrepo"
	"orderpanel/internal/adapters/out/sqlstore/orderrepo"
	"orderpanel/internal/adapters/out/sqlstore/outboxrepo"
	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		events: make([]order.Event, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and the order events
// raised inside it. Repositories record events as they write; Commit appends
// them to the outbox in the same transaction so an event exists if and only
// if its change does.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	events []order.Event
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes recorded events to the outbox and commits. Returns
// gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if len(uow.events) > 0 {
		if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, uow.events...); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.events = uow.events[:0]
	return err
}

// Rollback discards the transaction and the recorded events. Returns
// gorm.ErrInvalidTransaction if no transaction is active, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.events = uow.events[:0]
	return err
}

// OrderRepository returns a repository bound to the active transaction, or
// to the pool when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// Record queues an order event for the outbox. Called by repositories.
func (uow *GormUnitOfWork) Record(event order.Event) {
	uow.events = append(uow.events, event)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
