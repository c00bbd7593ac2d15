package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a catalog entry offered to customers.
type Item struct {
	id            int64
	category      kernel.Category
	name          string
	price         kernel.Price
	description   string
	isConstructed bool
}

// NewItem builds an unpersisted item. The category must be a catalog category
// (CUSTOM is reserved for free-form orders) and the name must not be blank.
func NewItem(category kernel.Category, name string, price kernel.Price, description string) (*Item, error) {
	item := &Item{isConstructed: true}
	if err := errors.Join(
		item.setCategory(category),
		item.setName(name),
	); err != nil {
		return nil, err
	}
	item.price = price
	item.description = strings.TrimSpace(description)
	return item, nil
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(id int64, category kernel.Category, name string, price kernel.Price, description string) (*Item, error) {
	item, err := NewItem(category, name, price, description)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a persisted item id", id))
	}
	item.id = id
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64                 { return i.id }
func (i *Item) Category() kernel.Category { return i.category }
func (i *Item) Name() string              { return i.name }
func (i *Item) Price() kernel.Price       { return i.price }
func (i *Item) Description() string       { return i.description }

func (i *Item) setCategory(c kernel.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsCatalogCategory() {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%s is reserved for custom requests", c))
	}
	i.category = c
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

// DefaultItems is the starter catalog used when seeding an empty store.
func DefaultItems() []*Item {
	defaults := []struct {
		category kernel.Category
		name     string
		price    int64
	}{
		{kernel.CategoryTopUp, "1,000 Gems", 10000},
		{kernel.CategoryTopUp, "5,000 Gems", 45000},
		{kernel.CategoryJoki, "Level 1-50", 25000},
		{kernel.CategoryItem, "Aurora Rod", 150000},
	}

	items := make([]*Item, 0, len(defaults))
	for _, d := range defaults {
		item, err := NewItem(d.category, d.name, kernel.MustNewPrice(d.price), "")
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	return items
}
