package commands

import (
	"context"

	"orderpanel/internal/core/domain/model/catalog"
)

// CreateCatalogItemCommandHandler inserts a catalog item and returns it with
// its assigned id.
type CreateCatalogItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCatalogItemCommandHandler(uowFactory CatalogUoWFactory) CreateCatalogItemCommandHandler {
	return CreateCatalogItemCommandHandler{uowFactory: uowFactory}
}

func (h CreateCatalogItemCommandHandler) Handle(ctx context.Context, cmd CreateCatalogItemCommand) (*catalog.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := catalog.NewItem(cmd.Category(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.CatalogRepository().Add(ctx, item)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
