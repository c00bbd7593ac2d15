package commands

import (
	"errors"
	"strings"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/guard"
)

var ErrCreateCatalogItemCommandIsNotConstructed = errors.New(
	"CreateCatalogItemCommand must be created via NewCreateCatalogItemCommand constructor",
)

// CreateCatalogItemCommand adds an item to the catalog.
type CreateCatalogItemCommand struct { //nolint:recvcheck //using for validation
	category    kernel.Category
	name        string
	price       kernel.Price
	description string

	guard guard.ConstructorGuard
}

// NewCreateCatalogItemCommand parses the category and price. Name and
// category rules (no CUSTOM, non-blank name) are enforced by catalog.NewItem
// in the handler.
func NewCreateCatalogItemCommand(category, name string, price int64, description string) (CreateCatalogItemCommand, error) {
	c, categoryErr := kernel.ParseCategory(category)
	p, priceErr := kernel.NewPrice(price)
	if err := errors.Join(categoryErr, priceErr); err != nil {
		return CreateCatalogItemCommand{}, err
	}

	return CreateCatalogItemCommand{
		category:    c,
		name:        strings.TrimSpace(name),
		price:       p,
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateCatalogItemCommandIsNotConstructed)
}

func (c CreateCatalogItemCommand) Category() kernel.Category { return c.category }
func (c CreateCatalogItemCommand) Name() string              { return c.name }
func (c CreateCatalogItemCommand) Price() kernel.Price       { return c.price }
func (c CreateCatalogItemCommand) Description() string       { return c.description }
