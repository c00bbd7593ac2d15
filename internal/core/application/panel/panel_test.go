package panel_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/core/application/panel"
	"orderpanel/internal/core/application/usecases/commands"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type liveSessions struct{}

func (liveSessions) Save(context.Context, string, time.Duration) error { return nil }
func (liveSessions) Exists(context.Context, string) (bool, error)      { return true, nil }
func (liveSessions) Delete(context.Context, string) error              { return nil }

// operator returns a Capability minted the only way production code can.
func operator(t *testing.T) auth.Capability {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	a, err := auth.NewAuthenticator(string(h), liveSessions{}, time.Hour)
	require.NoError(t, err)
	capability, err := a.Authorize(context.Background(), "token")
	require.NoError(t, err)
	return capability
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, q queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockStatusTransitioner struct{ mock.Mock }

func (m *MockStatusTransitioner) Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCatalogLister struct{ mock.Mock }

func (m *MockCatalogLister) Handle(ctx context.Context, q queries.ListCatalogItemsQuery) ([]queries.CatalogItemView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.CatalogItemView), args.Error(1)
}

type MockCatalogItemCreator struct{ mock.Mock }

func (m *MockCatalogItemCreator) Handle(ctx context.Context, cmd commands.CreateCatalogItemCommand) (*catalog.Item, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func processingFilter() any {
	return mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Search() == "budi" && q.Status() == order.Processing
	})
}

func TestPanel_RequiresCapability(t *testing.T) {
	p := panel.New(panel.Handlers{}, discardLogger())
	ctx := context.Background()
	none := auth.Capability{}

	_, err := p.ListOrders(ctx, none, panel.Filter{})
	require.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = p.TransitionStatus(ctx, none, 1, "Processing", panel.Filter{})
	require.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = p.DeleteOrder(ctx, none, 1, panel.Filter{})
	require.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = p.Stats(ctx, none)
	require.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = p.CreateCatalogItem(ctx, none, panel.CatalogItemInput{})
	require.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = p.DeleteCatalogItem(ctx, none, 1)
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestPanel_TransitionStatus_ReturnsFilteredList(t *testing.T) {
	ctx := context.Background()
	want := []queries.OrderView{{ID: 5, Status: order.Processing}}

	transitioner := new(MockStatusTransitioner)
	lister := new(MockOrderLister)
	mock.InOrder(
		transitioner.On("Handle", ctx, mock.MatchedBy(func(cmd commands.TransitionOrderStatusCommand) bool {
			return cmd.OrderID() == 5 && cmd.Target() == order.Processing
		})).Return(nil).Once(),
		lister.On("Handle", ctx, processingFilter()).Return(want, nil).Once(),
	)

	p := panel.New(panel.Handlers{ListOrders: lister, TransitionStatus: transitioner}, discardLogger())
	got, err := p.TransitionStatus(ctx, operator(t), 5, "Processing", panel.Filter{Search: "budi", Status: "Processing"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	transitioner.AssertExpectations(t)
	lister.AssertExpectations(t)
}

func TestPanel_TransitionStatus_RejectedTransitionSkipsListing(t *testing.T) {
	ctx := context.Background()
	transitioner := new(MockStatusTransitioner)
	transitioner.On("Handle", ctx, mock.Anything).
		Return(errs.NewInvalidTransitionError("Done", "Pending")).Once()
	lister := new(MockOrderLister)

	p := panel.New(panel.Handlers{ListOrders: lister, TransitionStatus: transitioner}, discardLogger())
	_, err := p.TransitionStatus(ctx, operator(t), 5, "Pending", panel.Filter{})
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	lister.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPanel_TransitionStatus_BadInputWritesNothing(t *testing.T) {
	transitioner := new(MockStatusTransitioner)
	p := panel.New(panel.Handlers{TransitionStatus: transitioner}, discardLogger())

	_, err := p.TransitionStatus(context.Background(), operator(t), 5, "Shipped", panel.Filter{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = p.TransitionStatus(context.Background(), operator(t), 5, "Done", panel.Filter{Status: "Lost"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	transitioner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPanel_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	deleter := new(MockOrderDeleter)
	lister := new(MockOrderLister)
	mock.InOrder(
		deleter.On("Handle", ctx, mock.MatchedBy(func(cmd commands.DeleteOrderCommand) bool {
			return cmd.OrderID() == 5
		})).Return(nil).Once(),
		lister.On("Handle", ctx, processingFilter()).Return([]queries.OrderView{}, nil).Once(),
	)

	p := panel.New(panel.Handlers{ListOrders: lister, DeleteOrder: deleter}, discardLogger())
	got, err := p.DeleteOrder(ctx, operator(t), 5, panel.Filter{Search: "budi", Status: "Processing"})
	require.NoError(t, err)
	assert.Empty(t, got)

	deleter.On("Handle", ctx, mock.Anything).Return(errs.NewObjectNotFoundError("order", int64(6))).Once()
	_, err = p.DeleteOrder(ctx, operator(t), 6, panel.Filter{})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	lister.AssertNumberOfCalls(t, "Handle", 1)
}

func TestPanel_CreateCatalogItem_ReturnsCatalog(t *testing.T) {
	ctx := context.Background()
	stored, err := catalog.RestoreItem(5, kernel.CategoryJoki, "Level 50-100", kernel.MustNewPrice(40000), "")
	require.NoError(t, err)
	refreshed := []queries.CatalogItemView{{ID: 5, Category: kernel.CategoryJoki, Name: "Level 50-100", Price: 40000}}

	creator := new(MockCatalogItemCreator)
	lister := new(MockCatalogLister)
	creator.On("Handle", ctx, mock.AnythingOfType("commands.CreateCatalogItemCommand")).Return(stored, nil).Once()
	lister.On("Handle", ctx, mock.Anything).Return(refreshed, nil).Once()

	p := panel.New(panel.Handlers{CreateCatalogItem: creator, ListCatalog: lister}, discardLogger())
	got, err := p.CreateCatalogItem(ctx, operator(t), panel.CatalogItemInput{Category: "JOKI", Name: "Level 50-100", Price: 40000})
	require.NoError(t, err)
	assert.Equal(t, refreshed, got)

	_, err = p.CreateCatalogItem(ctx, operator(t), panel.CatalogItemInput{Category: "JOKI", Name: "x", Price: -1})
	require.True(t, errs.IsValidation(err))

	creator.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = p.CreateCatalogItem(ctx, operator(t), panel.CatalogItemInput{Category: "JOKI", Name: "x"})
	require.EqualError(t, err, "db down")
}
