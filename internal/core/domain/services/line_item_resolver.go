package services

import (
	"strconv"
	"strings"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"
)

const (
	// CustomProductRef is the sentinel a customer submits for a free-form request.
	CustomProductRef = "CUSTOM"
	// DefaultCustomItemName labels a custom request submitted without a name.
	DefaultCustomItemName = "Custom Request"
)

// ProductRef is the catalog reference attached to an intake submission.
// A ref is either custom or points at a catalog id; the id may not exist.
type ProductRef struct {
	id int64
}

// ParseProductRef interprets the raw reference. Empty input, the CUSTOM
// sentinel and anything that is not a positive integer all yield a custom ref,
// since none of them can match a catalog row.
func ParseProductRef(raw string) ProductRef {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, CustomProductRef) {
		return ProductRef{}
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return ProductRef{}
	}
	return ProductRef{id: id}
}

// CatalogID returns the referenced catalog id and true, or 0 and false for a
// custom ref.
func (r ProductRef) CatalogID() (int64, bool) {
	return r.id, r.id > 0
}

// IsCustom reports whether the ref names no catalog item.
func (r ProductRef) IsCustom() bool {
	return r.id == 0
}

func (r ProductRef) String() string {
	if r.IsCustom() {
		return CustomProductRef
	}
	return strconv.FormatInt(r.id, 10)
}

// LineItemResolver decides what an order is for.
//
// Business rules:
//   - when the catalog item exists, its category, name and price win and the
//     customer's submitted name and price are ignored
//   - otherwise the order is a CUSTOM request named by the customer
//     (DefaultCustomItemName when blank) at the submitted price
//   - a negative submitted price is rejected
type LineItemResolver struct{}

func NewLineItemResolver() LineItemResolver {
	return LineItemResolver{}
}

// Resolve builds the line item. item is nil when the ref was custom or the
// catalog lookup found nothing.
func (LineItemResolver) Resolve(item *catalog.Item, submittedName string, submittedPrice int64) (order.LineItem, error) {
	if item != nil {
		if err := item.Validate(); err != nil {
			return order.LineItem{}, err
		}
		return order.NewLineItem(item.Category(), item.Name(), item.Price())
	}

	name := strings.TrimSpace(submittedName)
	if name == "" {
		name = DefaultCustomItemName
	}
	price, err := kernel.NewPrice(submittedPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(kernel.CategoryCustom, name, price)
}
