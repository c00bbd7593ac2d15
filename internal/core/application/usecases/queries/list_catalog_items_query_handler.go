package queries

import (
	"context"
	"fmt"

	"orderpanel/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListCatalogItemsQueryHandler returns catalog items ordered by category,
// then price ascending, then id.
type ListCatalogItemsQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogItemsQueryHandler(db *gorm.DB) ListCatalogItemsQueryHandler {
	return ListCatalogItemsQueryHandler{db: db}
}

func (h ListCatalogItemsQueryHandler) Handle(ctx context.Context, query ListCatalogItemsQuery) ([]CatalogItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			name,
			price,
			description
		FROM products
		ORDER BY category, price ASC, id ASC
	`).Rows()
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	items := make([]CatalogItemView, 0)
	for rows.Next() {
		var (
			v        CatalogItemView
			category string
		)
		if err = rows.Scan(&v.ID, &category, &v.Name, &v.Price, &v.Description); err != nil {
			return nil, fmt.Errorf("list catalog: %w", err)
		}
		v.Category = kernel.Category(category)
		items = append(items, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return items, nil
}
