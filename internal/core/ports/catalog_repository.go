package ports

import (
	"context"

	"orderpanel/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for catalog items.
// Catalog rows are independent of orders: deleting one never touches the
// orders that copied its name and price.
type CatalogRepository interface {
	Add(ctx context.Context, item *catalog.Item) (*catalog.Item, error)

	// Get returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int64) (*catalog.Item, error)

	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
}
