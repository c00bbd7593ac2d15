package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"orderpanel/internal/adapters/out/broker"
	"orderpanel/internal/adapters/out/broker/kafkapub"
	"orderpanel/internal/adapters/out/broker/rabbitpub"
	"orderpanel/internal/adapters/out/sqlstore"
	"orderpanel/internal/core/application/panel"
	"orderpanel/internal/core/application/usecases/commands"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *sqlstore.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: sqlstore.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCatalogItemCommandHandler() commands.CreateCatalogItemCommandHandler {
	return commands.NewCreateCatalogItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCatalogItemCommandHandler() commands.DeleteCatalogItemCommandHandler {
	return commands.NewDeleteCatalogItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(
	publisher ports.EventPublisher,
	feed commands.EventFeed,
) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher, feed)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrdersQueryHandler() queries.TrackOrdersQueryHandler {
	return queries.NewTrackOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCatalogItemsQueryHandler() queries.ListCatalogItemsQueryHandler {
	return queries.NewListCatalogItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreatePanel wires the operator panel to the order and catalog use cases.
func (c *CompositionRoot) CreatePanel() *panel.Panel {
	return panel.New(panel.Handlers{
		ListOrders:        c.CreateListOrdersQueryHandler(),
		TransitionStatus:  c.CreateTransitionOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		Stats:             c.CreateGetOrderStatsQueryHandler(),
		ListCatalog:       c.CreateListCatalogItemsQueryHandler(),
		CreateCatalogItem: c.CreateCreateCatalogItemCommandHandler(),
		DeleteCatalogItem: c.CreateDeleteCatalogItemCommandHandler(),
	}, c.logger)
}

// EventPublisher is a broker publisher the process must close on shutdown.
type EventPublisher interface {
	ports.EventPublisher
	io.Closer
}

// CreateEventPublisher connects to the broker selected by EVENT_BROKER.
func (c *CompositionRoot) CreateEventPublisher() (EventPublisher, error) {
	switch c.cfg.EventBroker {
	case BrokerKafka:
		return kafkapub.NewPublisher(c.cfg.KafkaBrokers, c.cfg.KafkaOrderEventsTopic), nil
	case BrokerRabbitMQ:
		return rabbitpub.Dial(c.cfg.RabbitMQURL, c.cfg.RabbitMQQueue)
	case BrokerNone, "":
		return broker.NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown event broker %q", c.cfg.EventBroker)
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
