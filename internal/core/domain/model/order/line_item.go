package order

import (
	"errors"
	"strings"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/errs"
	"orderpanel/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is what the order is for: a category, a display name and a price.
// It is copied from the catalog (or from the customer's free-form request) at
// intake and never refers back to the catalog afterwards.
type LineItem struct {
	category kernel.Category
	name     string
	price    kernel.Price
	guard    guard.ConstructorGuard
}

// NewLineItem validates the category and requires a non-blank name.
func NewLineItem(category kernel.Category, name string, price kernel.Price) (LineItem, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("itemName")
	}
	if err := errors.Join(category.Validate(), nameErr); err != nil {
		return LineItem{}, err
	}
	return LineItem{
		category: category,
		name:     name,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) Category() kernel.Category {
	return l.category
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Price() kernel.Price {
	return l.price
}
