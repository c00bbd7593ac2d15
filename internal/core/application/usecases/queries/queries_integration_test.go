package queries_test

import (
	"context"
	"testing"

	"orderpanel/internal/adapters/out/sqlstore"
	"orderpanel/internal/adapters/out/sqlstore/sqltest"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory

	listOrders  queries.ListOrdersQueryHandler
	trackOrders queries.TrackOrdersQueryHandler
	listCatalog queries.ListCatalogItemsQueryHandler
	stats       queries.GetOrderStatsQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	container, db, err := sqltest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(sqlstore.Migrate(db))
	suite.factory = sqlstore.NewGormUnitOfWorkFactory(db)

	suite.listOrders = queries.NewListOrdersQueryHandler(db)
	suite.trackOrders = queries.NewTrackOrdersQueryHandler(db)
	suite.listCatalog = queries.NewListCatalogItemsQueryHandler(db)
	suite.stats = queries.NewGetOrderStatsQueryHandler(db)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + sqltest.Tables + " RESTART IDENTITY").Error)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// addOrder stores an order and walks it to status.
func (suite *QueryHandlersTestSuite) addOrder(customer, handle, item string, price int64, status order.Status) int64 {
	ctx := context.Background()
	line, err := order.NewLineItem(kernel.CategoryTopUp, item, kernel.MustNewPrice(price))
	suite.Require().NoError(err)
	o, err := order.NewOrder(customer, handle, line, order.PaymentDANA, "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	stored, err := uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	path := map[order.Status][]order.Status{
		order.Processing: {order.Processing},
		order.Done:       {order.Processing, order.Done},
		order.Cancelled:  {order.Cancelled},
	}[status]
	for _, next := range path {
		suite.Require().NoError(stored.TransitionTo(next))
		suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, stored))
	}
	suite.Require().NoError(uow.Commit(ctx))
	return stored.ID()
}

func (suite *QueryHandlersTestSuite) list(search, status string) []queries.OrderView {
	q, err := queries.NewListOrdersQuery(search, status)
	suite.Require().NoError(err)
	views, err := suite.listOrders.Handle(context.Background(), q)
	suite.Require().NoError(err)
	return views
}

func ids(views []queries.OrderView) []int64 {
	out := make([]int64, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func (suite *QueryHandlersTestSuite) TestListOrders_EmptyStore() {
	views := suite.list("", "")
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueryHandlersTestSuite) TestListOrders_UnfilteredIsNewestFirst() {
	suite.addOrder("Budi", "FishingPro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Sari", "AnglerKing", "5,000 Gems", 45000, order.Done)
	suite.addOrder("Tono", "reelmaster", "Aurora Rod", 150000, order.Cancelled)

	views := suite.list("", "")
	suite.Equal([]int64{3, 2, 1}, ids(views))
	suite.Equal(order.Cancelled, views[0].Status)
	suite.Empty(views[0].Actions)
	suite.Equal([]order.Status{order.Processing, order.Cancelled}, views[2].Actions)
	suite.Equal("5,000 Gems", views[1].ItemName)
	suite.Equal(int64(45000), views[1].Price)
	suite.Equal(order.PaymentDANA, views[1].PaymentMethod)
}

func (suite *QueryHandlersTestSuite) TestListOrders_StatusFilterIsExact() {
	suite.addOrder("Budi", "FishingPro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Sari", "AnglerKing", "5,000 Gems", 45000, order.Processing)
	suite.addOrder("Tono", "reelmaster", "Aurora Rod", 150000, order.Pending)

	suite.Equal([]int64{3, 1}, ids(suite.list("", "Pending")))
	suite.Equal([]int64{2}, ids(suite.list("", "processing")))
	suite.Empty(suite.list("", "Done"))
}

func (suite *QueryHandlersTestSuite) TestListOrders_SearchAcrossFields() {
	suite.addOrder("Budi Santoso", "FishingPro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Sari", "AnglerKing", "5,000 Gems", 45000, order.Processing)
	for i := 0; i < 10; i++ {
		suite.addOrder("Filler", "filler", "1,000 Gems", 10000, order.Pending)
	}

	suite.Equal([]int64{1}, ids(suite.list("budi", "")), "customer name, case-insensitive")
	suite.Equal([]int64{2}, ids(suite.list("ANGLER", "")), "roblox handle")
	suite.Equal([]int64{12, 11, 10}, ids(suite.list("1", "")[:3]), "id as text")
	suite.Equal([]int64{2}, ids(suite.list("  sari ", "Processing")), "search and status combine")
	suite.Empty(suite.list("sari", "Pending"))
}

func (suite *QueryHandlersTestSuite) TestListOrders_WildcardsMatchLiterally() {
	suite.addOrder("Budi", "Pro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Sari", "Pro199", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("100% Tono", "reelmaster", "1,000 Gems", 10000, order.Pending)

	suite.Equal([]int64{1}, ids(suite.list("pro_", "")))
	suite.Equal([]int64{3}, ids(suite.list("%", "")))
}

func (suite *QueryHandlersTestSuite) TestTrackOrders() {
	suite.addOrder("Budi", "FishingPro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Budi", "FishingPro_99", "5,000 Gems", 45000, order.Done)
	suite.addOrder("Budi Santoso", "AnglerKing", "Aurora Rod", 150000, order.Pending)

	ctx := context.Background()

	suite.Run("handle of two characters is too short", func() {
		res, err := suite.trackOrders.Handle(ctx, queries.NewTrackOrdersQuery(" fi "))
		suite.Require().NoError(err)
		suite.True(res.TooShort)
		suite.False(res.Empty())
		suite.Empty(res.Orders)
	})

	suite.Run("unknown handle is empty", func() {
		res, err := suite.trackOrders.Handle(ctx, queries.NewTrackOrdersQuery("nobody_here"))
		suite.Require().NoError(err)
		suite.False(res.TooShort)
		suite.True(res.Empty())
	})

	suite.Run("matches handle only, newest first", func() {
		res, err := suite.trackOrders.Handle(ctx, queries.NewTrackOrdersQuery("fishingpro"))
		suite.Require().NoError(err)
		suite.Require().Len(res.Orders, 2)
		suite.Equal(int64(2), res.Orders[0].ID)
		suite.Equal("5,000 Gems", res.Orders[0].ItemName)
		suite.Equal(order.Done, res.Orders[0].Status)
		suite.False(res.Orders[0].CreatedAt.IsZero())

		res, err = suite.trackOrders.Handle(ctx, queries.NewTrackOrdersQuery("Budi"))
		suite.Require().NoError(err)
		suite.True(res.Empty(), "customer name is not searched")
	})
}

func (suite *QueryHandlersTestSuite) TestListCatalogItems_GroupedAndSorted() {
	ctx := context.Background()
	items := append(catalog.DefaultItems(),
		mustItem(kernel.CategoryTopUp, "500 Gems", 5000),
		mustItem(kernel.CategoryItem, "Bait Pack", 5000),
	)
	_, err := sqlstore.SeedCatalog(ctx, suite.db, items, false)
	suite.Require().NoError(err)

	views, err := suite.listCatalog.Handle(ctx, queries.NewListCatalogItemsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(views, 6)

	groups := queries.GroupByCategory(views)
	suite.Require().Len(groups, 3)
	suite.Equal(kernel.CategoryItem, groups[0].Category)
	suite.Equal("Bait Pack", groups[0].Items[0].Name)
	suite.Equal(kernel.CategoryJoki, groups[1].Category)
	suite.Equal(kernel.CategoryTopUp, groups[2].Category)
	suite.Equal([]string{"500 Gems", "1,000 Gems", "5,000 Gems"},
		[]string{groups[2].Items[0].Name, groups[2].Items[1].Name, groups[2].Items[2].Name})
}

func (suite *QueryHandlersTestSuite) TestGetOrderStats() {
	ctx := context.Background()

	stats, err := suite.stats.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(queries.OrderStats{}, stats)

	suite.addOrder("Budi", "FishingPro_99", "1,000 Gems", 10000, order.Pending)
	suite.addOrder("Sari", "AnglerKing", "5,000 Gems", 45000, order.Processing)
	suite.addOrder("Tono", "reelmaster", "Level 1-50", 25000, order.Done)
	suite.addOrder("Ayu", "castaway", "Aurora Rod", 150000, order.Cancelled)

	stats, err = suite.stats.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(4), stats.Total)
	suite.Equal(int64(80000), stats.Revenue)
	suite.Equal(int64(2), stats.Active)
}

func mustItem(c kernel.Category, name string, price int64) *catalog.Item {
	item, err := catalog.NewItem(c, name, kernel.MustNewPrice(price), "")
	if err != nil {
		panic(err)
	}
	return item
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
