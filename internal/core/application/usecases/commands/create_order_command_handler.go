package commands

import (
	"context"
	"errors"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/domain/services"
	"orderpanel/internal/pkg/errs"
)

// CreateOrderCommandHandler records a new Pending order.
//
// When the product ref names an existing catalog item, that item's category,
// name and price are copied onto the order and the submitted values are
// ignored. Otherwise the order becomes a CUSTOM request.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	stored, err := handler.Handle(ctx, cmd)
//	if errs.IsValidation(err) {
//	    // bad input, nothing was written
//	}
//	fmt.Printf("order #%d is %s", stored.ID(), stored.Status())
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	resolver   services.LineItemResolver
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewLineItemResolver(),
	}
}

// Handle resolves the line item, builds the order and inserts it in a single
// transaction. Returns the stored order with its assigned ID.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var item *catalog.Item
	if id, ok := cmd.ProductRef().CatalogID(); ok {
		found, err := uow.CatalogRepository().Get(ctx, id)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// stale or forged ref: fall back to a custom request
		case err != nil:
			return nil, err
		default:
			item = found
		}
	}

	line, err := h.resolver.Resolve(item, cmd.SubmittedItemName(), cmd.SubmittedPrice())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.CustomerName(), cmd.RobloxUser(), line, cmd.PaymentMethod(), cmd.ProofImage())
	if err != nil {
		return nil, err
	}

	stored, err := uow.OrderRepository().Add(ctx, o)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
