package queries

import (
	"context"
	"fmt"

	"orderpanel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStats, error) {
	if err := query.Validate(); err != nil {
		return OrderStats{}, err
	}

	var stats OrderStats
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status <> ? THEN price ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0)
		FROM orders
	`, order.Cancelled.String(), order.Pending.String(), order.Processing.String()).Row()
	if err := row.Scan(&stats.Total, &stats.Revenue, &stats.Active); err != nil {
		return OrderStats{}, fmt.Errorf("order stats: %w", err)
	}

	return stats, nil
}
