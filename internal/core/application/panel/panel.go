// Package panel is the operator's entry point into the core. Every method
// requires an auth.Capability, and every mutation answers with the view the
// operator is looking at, produced by the same read path as a plain listing.
package panel

import (
	"context"
	"log/slog"

	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/core/application/usecases/commands"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/domain/model/catalog"
)

type (
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}

	StatusTransitioner interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) error
	}

	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	StatsReader interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.OrderStats, error)
	}

	CatalogLister interface {
		Handle(ctx context.Context, query queries.ListCatalogItemsQuery) ([]queries.CatalogItemView, error)
	}

	CatalogItemCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCatalogItemCommand) (*catalog.Item, error)
	}

	CatalogItemDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteCatalogItemCommand) error
	}
)

// Filter is the operator's current list view. Empty fields mean "any".
type Filter struct {
	Search string
	Status string
}

func (f Filter) query() (queries.ListOrdersQuery, error) {
	return queries.NewListOrdersQuery(f.Search, f.Status)
}

// Handlers bundles the use cases the panel drives.
type Handlers struct {
	ListOrders        OrderLister
	TransitionStatus  StatusTransitioner
	DeleteOrder       OrderDeleter
	Stats             StatsReader
	ListCatalog       CatalogLister
	CreateCatalogItem CatalogItemCreator
	DeleteCatalogItem CatalogItemDeleter
}

type Panel struct {
	h      Handlers
	logger *slog.Logger
}

func New(h Handlers, logger *slog.Logger) *Panel {
	return &Panel{
		h:      h,
		logger: logger.With("component", "panel"),
	}
}

// ListOrders is the canonical order list read path.
func (p *Panel) ListOrders(ctx context.Context, capability auth.Capability, filter Filter) ([]queries.OrderView, error) {
	if err := capability.Validate(); err != nil {
		return nil, err
	}
	q, err := filter.query()
	if err != nil {
		return nil, err
	}
	return p.h.ListOrders.Handle(ctx, q)
}

// TransitionStatus moves one order to target and returns the list under
// filter. The filter is checked before anything is written.
func (p *Panel) TransitionStatus(
	ctx context.Context,
	capability auth.Capability,
	orderID int64,
	target string,
	filter Filter,
) ([]queries.OrderView, error) {
	if err := capability.Validate(); err != nil {
		return nil, err
	}
	q, err := filter.query()
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, target)
	if err != nil {
		return nil, err
	}

	if err = p.h.TransitionStatus.Handle(ctx, cmd); err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "order status changed", "order_id", orderID, "status", cmd.Target())

	return p.h.ListOrders.Handle(ctx, q)
}

// DeleteOrder removes one order and returns the list under filter.
func (p *Panel) DeleteOrder(
	ctx context.Context,
	capability auth.Capability,
	orderID int64,
	filter Filter,
) ([]queries.OrderView, error) {
	if err := capability.Validate(); err != nil {
		return nil, err
	}
	q, err := filter.query()
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = p.h.DeleteOrder.Handle(ctx, cmd); err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "order deleted", "order_id", orderID)

	return p.h.ListOrders.Handle(ctx, q)
}

func (p *Panel) Stats(ctx context.Context, capability auth.Capability) (queries.OrderStats, error) {
	if err := capability.Validate(); err != nil {
		return queries.OrderStats{}, err
	}
	return p.h.Stats.Handle(ctx, queries.NewGetOrderStatsQuery())
}

// CatalogItemInput carries the operator's new catalog entry.
type CatalogItemInput struct {
	Category    string
	Name        string
	Price       int64
	Description string
}

// CreateCatalogItem adds an item and returns the refreshed catalog.
func (p *Panel) CreateCatalogItem(
	ctx context.Context,
	capability auth.Capability,
	in CatalogItemInput,
) ([]queries.CatalogItemView, error) {
	if err := capability.Validate(); err != nil {
		return nil, err
	}
	cmd, err := commands.NewCreateCatalogItemCommand(in.Category, in.Name, in.Price, in.Description)
	if err != nil {
		return nil, err
	}

	item, err := p.h.CreateCatalogItem.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "catalog item created", "item_id", item.ID(), "name", item.Name())

	return p.h.ListCatalog.Handle(ctx, queries.NewListCatalogItemsQuery())
}

// DeleteCatalogItem removes an item and returns the refreshed catalog.
// Orders that copied the item are not touched.
func (p *Panel) DeleteCatalogItem(
	ctx context.Context,
	capability auth.Capability,
	itemID int64,
) ([]queries.CatalogItemView, error) {
	if err := capability.Validate(); err != nil {
		return nil, err
	}
	cmd, err := commands.NewDeleteCatalogItemCommand(itemID)
	if err != nil {
		return nil, err
	}

	if err = p.h.DeleteCatalogItem.Handle(ctx, cmd); err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "catalog item deleted", "item_id", itemID)

	return p.h.ListCatalog.Handle(ctx, queries.NewListCatalogItemsQuery())
}
