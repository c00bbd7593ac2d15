package commands

import (
	"context"
)

type DeleteCatalogItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCatalogItemCommandHandler(uowFactory CatalogUoWFactory) DeleteCatalogItemCommandHandler {
	return DeleteCatalogItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the item or returns errs.ObjectNotFoundError.
func (h DeleteCatalogItemCommandHandler) Handle(ctx context.Context, cmd DeleteCatalogItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
