package commands

import (
	"errors"

	"orderpanel/internal/pkg/guard"
)

var ErrDeleteCatalogItemCommandIsNotConstructed = errors.New(
	"DeleteCatalogItemCommand must be created via NewDeleteCatalogItemCommand constructor",
)

// DeleteCatalogItemCommand removes a catalog item. Orders that copied the
// item's name and price are not affected.
type DeleteCatalogItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

func NewDeleteCatalogItemCommand(itemID int64) (DeleteCatalogItemCommand, error) {
	if err := validateID("itemID", itemID); err != nil {
		return DeleteCatalogItemCommand{}, err
	}
	return DeleteCatalogItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCatalogItemCommandIsNotConstructed)
}

func (c DeleteCatalogItemCommand) ItemID() int64 {
	return c.itemID
}
