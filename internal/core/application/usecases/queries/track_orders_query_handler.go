package queries

import (
	"context"
	"fmt"

	"orderpanel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// TrackOrdersQueryHandler serves the public order lookup. It matches the
// handle as a case-insensitive substring of roblox_user only, newest first.
// Handles shorter than MinTrackHandleLength never reach the database.
type TrackOrdersQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrdersQueryHandler(db *gorm.DB) TrackOrdersQueryHandler {
	return TrackOrdersQueryHandler{db: db}
}

func (h TrackOrdersQueryHandler) Handle(ctx context.Context, query TrackOrdersQuery) (TrackOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return TrackOrdersResult{}, err
	}
	if query.TooShort() {
		return TrackOrdersResult{TooShort: true, Orders: []TrackedOrder{}}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			created_at,
			status
		FROM orders
		WHERE LOWER(roblox_user) LIKE ? ESCAPE '`+likeEscape+`'
		ORDER BY id DESC
	`, containsPattern(query.RobloxUser())).Rows()
	if err != nil {
		return TrackOrdersResult{}, fmt.Errorf("track orders: %w", err)
	}
	defer rows.Close()

	result := TrackOrdersResult{Orders: make([]TrackedOrder, 0)}
	for rows.Next() {
		var (
			o      TrackedOrder
			status string
		)
		if err = rows.Scan(&o.ID, &o.ItemName, &o.CreatedAt, &status); err != nil {
			return TrackOrdersResult{}, fmt.Errorf("track orders: %w", err)
		}
		o.Status = order.Status(status)
		result.Orders = append(result.Orders, o)
	}

	if err = rows.Err(); err != nil {
		return TrackOrdersResult{}, fmt.Errorf("track orders: %w", err)
	}

	return result, nil
}
