package queries

import (
	"errors"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/guard"
)

var ErrListCatalogItemsQueryIsNotConstructed = errors.New(
	"ListCatalogItemsQuery must be created via NewListCatalogItemsQuery constructor",
)

// ListCatalogItemsQuery lists the whole catalog.
type ListCatalogItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListCatalogItemsQuery() ListCatalogItemsQuery {
	return ListCatalogItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCatalogItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogItemsQueryIsNotConstructed)
}

type CatalogItemView struct {
	ID          int64           `json:"id"`
	Category    kernel.Category `json:"category"`
	Name        string          `json:"name"`
	Price       int64           `json:"price"`
	Description string          `json:"description,omitempty"`
}

// CatalogGroup is one category's items in display order.
type CatalogGroup struct {
	Category kernel.Category   `json:"category"`
	Items    []CatalogItemView `json:"items"`
}

// GroupByCategory splits items into consecutive groups, keeping both the
// group order and the item order of the input.
func GroupByCategory(items []CatalogItemView) []CatalogGroup {
	groups := make([]CatalogGroup, 0)
	for _, item := range items {
		if n := len(groups); n > 0 && groups[n-1].Category == item.Category {
			groups[n-1].Items = append(groups[n-1].Items, item)
			continue
		}
		groups = append(groups, CatalogGroup{Category: item.Category, Items: []CatalogItemView{item}})
	}
	return groups
}
