package http

import (
	"context"
	"log/slog"

	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/core/application/panel"
	"orderpanel/internal/core/application/usecases/commands"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/domain/model/order"
)

type (
	orderIntake interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	orderTracker interface {
		Handle(ctx context.Context, query queries.TrackOrdersQuery) (queries.TrackOrdersResult, error)
	}

	catalogReader interface {
		Handle(ctx context.Context, query queries.ListCatalogItemsQuery) ([]queries.CatalogItemView, error)
	}

	// operatorPanel is implemented by *panel.Panel.
	operatorPanel interface {
		ListOrders(ctx context.Context, capability auth.Capability, filter panel.Filter) ([]queries.OrderView, error)
		TransitionStatus(
			ctx context.Context, capability auth.Capability, orderID int64, target string, filter panel.Filter,
		) ([]queries.OrderView, error)
		DeleteOrder(ctx context.Context, capability auth.Capability, orderID int64, filter panel.Filter) ([]queries.OrderView, error)
		Stats(ctx context.Context, capability auth.Capability) (queries.OrderStats, error)
		CreateCatalogItem(ctx context.Context, capability auth.Capability, in panel.CatalogItemInput) ([]queries.CatalogItemView, error)
		DeleteCatalogItem(ctx context.Context, capability auth.Capability, itemID int64) ([]queries.CatalogItemView, error)
	}

	// operatorGate is implemented by *auth.Authenticator.
	operatorGate interface {
		Login(ctx context.Context, password string) (auth.Session, error)
		Authorize(ctx context.Context, token string) (auth.Capability, error)
		Logout(ctx context.Context, token string) error
	}
)

// Server handles the HTTP surface: public intake, tracking and catalog,
// operator login, and the operator panel behind a bearer session token.
type Server struct {
	// Public use cases
	createOrderHandler orderIntake
	trackOrdersHandler orderTracker
	listCatalogHandler catalogReader

	// Operator side
	panel operatorPanel
	auth  operatorGate
	live  *LiveFeed

	logger *slog.Logger
}

// Deps bundles what NewServer needs.
type Deps struct {
	CreateOrder orderIntake
	TrackOrders orderTracker
	ListCatalog catalogReader
	Panel       operatorPanel
	Auth        operatorGate
	Live        *LiveFeed
	Logger      *slog.Logger
}

func NewServer(d Deps) *Server {
	return &Server{
		createOrderHandler: d.CreateOrder,
		trackOrdersHandler: d.TrackOrders,
		listCatalogHandler: d.ListCatalog,
		panel:              d.Panel,
		auth:               d.Auth,
		live:               d.Live,
		logger:             d.Logger.With("component", "http"),
	}
}
